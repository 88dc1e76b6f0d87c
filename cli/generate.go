package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khaclbit/algorithm-visualizer/builder"
	"github.com/khaclbit/algorithm-visualizer/converters"
	"github.com/khaclbit/algorithm-visualizer/core"
)

type generateFlags struct {
	size       int
	rows, cols int
	p          float64
	seed       int64
	directed   bool
	ids        string
	minW, maxW float64
	heuristics bool
	asText     bool
	save       string
}

func newGenerateCommand(o *options) *cobra.Command {
	f := generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate <cycle|path|star|wheel|complete|grid|random>",
		Short: "Generate a sample graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(f.minW > 0) {
				return fmt.Errorf("--min-weight must be positive, got %g", f.minW)
			}
			con, err := topology(args[0], f)
			if err != nil {
				return err
			}
			idFn, err := builder.IDScheme(f.ids)
			if err != nil {
				return err
			}
			bopts := []builder.BuilderOption{builder.WithIDScheme(idFn), builder.WithSeed(f.seed)}
			if f.maxW > f.minW {
				bopts = append(bopts, builder.WithWeightFn(builder.UniformWeightFn(f.minW, f.maxW)))
			} else {
				bopts = append(bopts, builder.WithWeightFn(builder.ConstantWeightFn(f.minW)))
			}
			if f.heuristics {
				bopts = append(bopts, builder.WithHeuristicFn(builder.ZeroHeuristic))
			}

			g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(f.directed)}, bopts, con)
			if err != nil {
				return err
			}
			if f.save != "" {
				st, err := o.openStore()
				if err != nil {
					return err
				}
				defer st.Close()
				if err := st.Save(cmd.Context(), f.save, g); err != nil {
					return err
				}
			}
			if f.asText {
				return writeText(cmd.OutOrStdout(), converters.FormatText(g, converters.DefaultFormatOptions()))
			}
			return converters.WriteJSON(cmd.OutOrStdout(), g)
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&f.size, "size", 5, "number of nodes")
	fs.IntVar(&f.rows, "rows", 3, "grid rows")
	fs.IntVar(&f.cols, "cols", 3, "grid columns")
	fs.Float64Var(&f.p, "p", 0.3, "edge probability for random graphs")
	fs.Int64Var(&f.seed, "seed", 1, "random seed")
	fs.BoolVar(&f.directed, "directed", false, "generate a directed graph")
	fs.StringVar(&f.ids, "ids", "excel", `node ID scheme: excel, decimal, symbol or "prefix:<p>"`)
	fs.Float64Var(&f.minW, "min-weight", 1, "minimum (or constant) edge weight")
	fs.Float64Var(&f.maxW, "max-weight", 1, "maximum edge weight")
	fs.BoolVar(&f.heuristics, "heuristics", false, "give every node the heuristic 0 so A* can run")
	fs.BoolVar(&f.asText, "text", false, "print edge-list text instead of JSON")
	fs.StringVar(&f.save, "save", "", "also store the graph under this name")
	return cmd
}

func topology(name string, f generateFlags) (builder.Constructor, error) {
	switch name {
	case "cycle":
		return builder.Cycle(f.size), nil
	case "path":
		return builder.Path(f.size), nil
	case "star":
		return builder.Star(f.size), nil
	case "wheel":
		return builder.Wheel(f.size), nil
	case "complete":
		return builder.Complete(f.size), nil
	case "grid":
		return builder.Grid(f.rows, f.cols), nil
	case "random":
		return builder.RandomSparse(f.size, f.p), nil
	default:
		return nil, fmt.Errorf("unknown topology %q", name)
	}
}
