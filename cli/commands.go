package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/khaclbit/algorithm-visualizer/converters"
	"github.com/khaclbit/algorithm-visualizer/core"
	"github.com/khaclbit/algorithm-visualizer/runner"
	"github.com/khaclbit/algorithm-visualizer/server"
	"github.com/khaclbit/algorithm-visualizer/step"
)

// graphSource selects where a command reads its graph from.
type graphSource struct {
	file string
	name string
}

func addGraphFlags(fs *pflag.FlagSet, src *graphSource) {
	fs.StringVarP(&src.file, "graph", "g", "", `graph file, JSON or "source target weight" text ("-" for stdin)`)
	fs.StringVarP(&src.name, "name", "n", "", "stored graph name")
}

// load resolves src to a graph. Exactly one of file and name must be set.
func (o *options) load(cmd *cobra.Command, src graphSource) (*core.Graph, error) {
	switch {
	case src.file != "" && src.name != "":
		return nil, fmt.Errorf("use either --graph or --name, not both")
	case src.name != "":
		st, err := o.openStore()
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return st.Load(cmd.Context(), src.name)
	case src.file != "":
		return o.readGraph(cmd, src.file)
	default:
		return nil, fmt.Errorf("a graph is required: pass --graph or --name")
	}
}

// readGraph reads a JSON document, or graph text when the content does not
// start with '{'.
func (o *options) readGraph(cmd *cobra.Command, file string) (*core.Graph, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return converters.ReadJSON(bytes.NewReader(data))
	}
	res := converters.ParseText(string(data), o.cfg.Text.ParseOptions())
	if err := res.Err(); err != nil {
		return nil, err
	}
	return res.Graph()
}

func newRunCommand(o *options) *cobra.Command {
	var (
		src           graphSource
		start, target string
		output        string
	)
	cmd := &cobra.Command{
		Use:   "run <algorithm>",
		Short: "Run an algorithm and print its steps",
		Long:  "Run one of: bfs, dfs, dijkstra, astar, floyd-warshall.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := o.load(cmd, src)
			if err != nil {
				return err
			}
			r := runner.New(runner.WithLogger(o.logger))
			res, err := r.Run(cmd.Context(), g, runner.Request{
				Algorithm: runner.Algorithm(args[0]),
				Start:     start,
				Target:    target,
			})
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), res, output, target != "")
		},
	}
	addGraphFlags(cmd.Flags(), &src)
	cmd.Flags().StringVarP(&start, "start", "s", "", "start node")
	cmd.Flags().StringVarP(&target, "target", "t", "", "target node")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

func writeResult(w io.Writer, res runner.Result, output string, withTarget bool) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case "text":
	default:
		return fmt.Errorf("unknown output format %q", output)
	}

	for i, s := range res.Steps {
		fmt.Fprintf(w, "%3d. [%s] %s\n", i+1, s.Kind, s.Comment)
	}
	sum := res.Summary
	fmt.Fprintf(w, "%s: %d steps, %d visited\n", sum.Algorithm, sum.StepCount, sum.VisitedCount)
	switch {
	case sum.PathFound:
		fmt.Fprintf(w, "path: %s (cost %s)\n", strings.Join(sum.Path, " → "), step.FormatNumber(sum.Cost))
	case withTarget:
		fmt.Fprintln(w, "path: none")
	}
	return nil
}

func newParseCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: `Parse "source target weight" text into a JSON graph`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}
			res := converters.ParseText(string(data), o.cfg.Text.ParseOptions())
			if !res.Success {
				for _, e := range res.Errors {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", e.Error())
					if e.Suggestion != "" {
						fmt.Fprintf(cmd.ErrOrStderr(), "  hint: %s\n", e.Suggestion)
					}
				}
				return fmt.Errorf("%d invalid line(s)", len(res.Errors))
			}
			g, err := res.Graph()
			if err != nil {
				return err
			}
			return converters.WriteJSON(cmd.OutOrStdout(), g)
		},
	}
}

func newFormatCommand(o *options) *cobra.Command {
	var (
		src  graphSource
		opts = converters.DefaultFormatOptions()
	)
	cmd := &cobra.Command{
		Use:   "format",
		Short: `Print a graph as "source target weight" text`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := o.load(cmd, src)
			if err != nil {
				return err
			}
			return writeText(cmd.OutOrStdout(), converters.FormatText(g, opts))
		},
	}
	addGraphFlags(cmd.Flags(), &src)
	cmd.Flags().BoolVar(&opts.SortEdges, "sort", opts.SortEdges, "sort edges by source, target, weight")
	cmd.Flags().BoolVar(&opts.IncludeComments, "comments", opts.IncludeComments, "add a comment header")
	cmd.Flags().BoolVar(&opts.Readable, "readable", opts.Readable, "pad columns")
	cmd.Flags().IntVar(&opts.Precision, "precision", opts.Precision, "decimals for fractional weights")
	return cmd
}

// writeText prints formatted graph text with a trailing newline.
func writeText(w io.Writer, text string) error {
	if text == "" || strings.HasSuffix(text, "\n") {
		_, err := io.WriteString(w, text)
		return err
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func newSaveCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> <file>",
		Short: "Store a graph file under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := o.readGraph(cmd, args[1])
			if err != nil {
				return err
			}
			st, err := o.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Save(cmd.Context(), args[0], g); err != nil {
				return err
			}
			o.logger.WithField("name", args[0]).Info("graph saved")
			return nil
		},
	}
}

func newLoadCommand(o *options) *cobra.Command {
	var asText bool
	cmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Print a stored graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := o.load(cmd, graphSource{name: args[0]})
			if err != nil {
				return err
			}
			if asText {
				return writeText(cmd.OutOrStdout(), converters.FormatText(g, converters.DefaultFormatOptions()))
			}
			return converters.WriteJSON(cmd.OutOrStdout(), g)
		},
	}
	cmd.Flags().BoolVar(&asText, "text", false, "print as edge-list text instead of JSON")
	return cmd
}

func newListCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := o.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			infos, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tNODES\tEDGES\tDIRECTED\tUPDATED")
			for _, in := range infos {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%t\t%s\n", in.Name, in.Nodes, in.Edges, in.Directed, in.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}
}

func newDeleteCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := o.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return st.Delete(cmd.Context(), args[0])
		},
	}
}

func newServeCommand(o *options) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				o.cfg.Server.Addr = addr
			}
			st, err := o.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return server.New(o.cfg, st, o.logger).Listen(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

func newColorCommand(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "color <a> <b>",
		Short: "Print the path color of a node pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := args[0], args[1]
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", step.PairColor(a, b), step.DimmedPairColor(a, b))
			return nil
		},
	}
}
