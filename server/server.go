// Package server exposes the runner, the graph store and the text
// converters over HTTP for the playback and rendering front end.
package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"github.com/khaclbit/algorithm-visualizer/astar"
	"github.com/khaclbit/algorithm-visualizer/bfs"
	"github.com/khaclbit/algorithm-visualizer/config"
	"github.com/khaclbit/algorithm-visualizer/converters"
	"github.com/khaclbit/algorithm-visualizer/core"
	"github.com/khaclbit/algorithm-visualizer/dfs"
	"github.com/khaclbit/algorithm-visualizer/dijkstra"
	"github.com/khaclbit/algorithm-visualizer/floydwarshall"
	"github.com/khaclbit/algorithm-visualizer/logging"
	"github.com/khaclbit/algorithm-visualizer/playback"
	"github.com/khaclbit/algorithm-visualizer/runner"
	"github.com/khaclbit/algorithm-visualizer/step"
	"github.com/khaclbit/algorithm-visualizer/store"
)

// Server wires the HTTP routes.
type Server struct {
	app    *fiber.App
	cfg    config.Config
	store  store.Store
	runner *runner.Runner
	logger logrus.FieldLogger
}

// runBody is the POST /run payload.
type runBody struct {
	Graph *core.Graph `json:"graph"`
	runner.Request
}

// parseBody is the POST /parse payload. With Merge set, parsed edges are
// applied over Graph instead of building a fresh layout.
type parseBody struct {
	Text    string                   `json:"text"`
	Graph   *core.Graph              `json:"graph,omitempty"`
	Merge   bool                     `json:"merge,omitempty"`
	Options *converters.ParseOptions `json:"options,omitempty"`
}

type parseResponse struct {
	converters.ParseResult
	Graph *core.Graph `json:"graph,omitempty"`
}

// New builds the server. st may be nil, which disables the /graphs routes.
func New(cfg config.Config, st store.Store, logger logrus.FieldLogger) *Server {
	logger = logging.OrDiscard(logger)
	s := &Server{
		cfg:    cfg,
		store:  st,
		runner: runner.New(runner.WithLogger(logger)),
		logger: logger.WithField("module", "server"),
	}
	s.app = fiber.New(fiber.Config{
		AppName:      "algoviz",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
	})
	s.routes()
	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on the configured address until ctx is done.
func (s *Server) Listen(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		errc <- s.app.Listen(s.cfg.Server.Addr, fiber.ListenConfig{DisableStartupMessage: true})
	}()
	s.logger.WithField("addr", s.cfg.Server.Addr).Info("listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.app.ShutdownWithContext(context.WithoutCancel(ctx))
	}
}

func (s *Server) routes() {
	s.app.Get("/algorithms", func(c fiber.Ctx) error {
		return c.JSON(runner.Algorithms)
	})
	s.app.Post("/run", s.run)
	s.app.Post("/parse", s.parse)
	s.app.Get("/color", s.color)
	s.app.Get("/pseudocode/:algorithm", s.pseudocode)

	if s.store == nil {
		return
	}
	s.app.Get("/graphs", s.listGraphs)
	s.app.Get("/graphs/:name", s.getGraph)
	s.app.Put("/graphs/:name", s.putGraph)
	s.app.Delete("/graphs/:name", s.deleteGraph)
	s.app.Post("/graphs/:name/run", s.runStored)
}

func (s *Server) run(c fiber.Ctx) error {
	var body runBody
	if err := c.Bind().JSON(&body); err != nil {
		return s.fail(c, fiber.StatusBadRequest, errors.New("invalid body"))
	}
	if body.Graph == nil {
		return s.fail(c, fiber.StatusBadRequest, errors.New("graph is required"))
	}
	return s.execute(c, body.Graph, body.Request)
}

func (s *Server) runStored(c fiber.Ctx) error {
	var req runner.Request
	if err := c.Bind().JSON(&req); err != nil {
		return s.fail(c, fiber.StatusBadRequest, errors.New("invalid body"))
	}
	g, err := s.store.Load(c.Context(), c.Params("name"))
	if err != nil {
		return s.fail(c, status(err), err)
	}
	return s.execute(c, g, req)
}

func (s *Server) execute(c fiber.Ctx, g *core.Graph, req runner.Request) error {
	res, err := s.runner.Run(c.Context(), g, req)
	if err != nil {
		return s.fail(c, status(err), err)
	}
	return c.JSON(res)
}

func (s *Server) parse(c fiber.Ctx) error {
	var body parseBody
	if err := c.Bind().JSON(&body); err != nil {
		return s.fail(c, fiber.StatusBadRequest, errors.New("invalid body"))
	}
	opts := s.cfg.Text.ParseOptions()
	if body.Options != nil {
		opts = *body.Options
	}

	res := converters.ParseText(body.Text, opts)
	if !res.Success {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(parseResponse{ParseResult: res})
	}

	var (
		g   *core.Graph
		err error
	)
	if body.Merge && body.Graph != nil {
		g, err = converters.MergeText(body.Graph, res)
	} else {
		g, err = res.Graph()
	}
	if err != nil {
		return s.fail(c, fiber.StatusUnprocessableEntity, err)
	}
	return c.JSON(parseResponse{ParseResult: res, Graph: g})
}

func (s *Server) color(c fiber.Ctx) error {
	a, b := c.Query("a"), c.Query("b")
	if a == "" || b == "" {
		return s.fail(c, fiber.StatusBadRequest, errors.New("query parameters a and b are required"))
	}
	return c.JSON(fiber.Map{
		"color":  step.PairColor(a, b),
		"dimmed": step.DimmedPairColor(a, b),
		"hsl":    step.PairHSL(a, b),
	})
}

func (s *Server) pseudocode(c fiber.Ctx) error {
	algo, err := runner.ParseAlgorithm(c.Params("algorithm"))
	if err != nil {
		return s.fail(c, status(err), err)
	}
	return c.JSON(playback.Pseudocode(string(algo)))
}

func (s *Server) listGraphs(c fiber.Ctx) error {
	infos, err := s.store.List(c.Context())
	if err != nil {
		return s.fail(c, status(err), err)
	}
	return c.JSON(infos)
}

func (s *Server) getGraph(c fiber.Ctx) error {
	g, err := s.store.Load(c.Context(), c.Params("name"))
	if err != nil {
		return s.fail(c, status(err), err)
	}
	return c.JSON(g)
}

func (s *Server) putGraph(c fiber.Ctx) error {
	g, err := converters.ReadJSON(bytes.NewReader(c.Body()))
	if err != nil {
		return s.fail(c, fiber.StatusBadRequest, err)
	}
	if err := s.store.Save(c.Context(), c.Params("name"), g); err != nil {
		return s.fail(c, status(err), err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) deleteGraph(c fiber.Ctx) error {
	if err := s.store.Delete(c.Context(), c.Params("name")); err != nil {
		return s.fail(c, status(err), err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// fail logs err and writes it as {"error": ...}.
func (s *Server) fail(c fiber.Ctx, code int, err error) error {
	entry := s.logger.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"status": code,
	}).WithError(err)
	if code >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

// status maps domain errors to HTTP status codes.
func status(err error) int {
	switch {
	case errors.Is(err, store.ErrGraphNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, store.ErrEmptyName),
		errors.Is(err, runner.ErrUnknownAlgorithm),
		errors.Is(err, runner.ErrStartRequired),
		errors.Is(err, runner.ErrTargetRequired),
		errors.Is(err, runner.ErrNodeNotFound),
		errors.Is(err, bfs.ErrStartNodeNotFound),
		errors.Is(err, dfs.ErrStartNodeNotFound),
		errors.Is(err, dijkstra.ErrStartNodeNotFound),
		errors.Is(err, floydwarshall.ErrNodeNotFound),
		errors.Is(err, converters.ErrInvalidJSON):
		return fiber.StatusBadRequest
	case errors.Is(err, astar.ErrMissingHeuristic):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
