// Package cli implements the algoviz command line.
package cli

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/khaclbit/algorithm-visualizer/config"
	"github.com/khaclbit/algorithm-visualizer/logging"
	"github.com/khaclbit/algorithm-visualizer/store"
)

// options carries the persistent flags and what PersistentPreRunE builds
// from them.
type options struct {
	configPath string
	storePath  string
	verbose    bool

	cfg    config.Config
	logger *logrus.Logger
}

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree.
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:          "algoviz",
		Short:        "Record step-by-step runs of graph algorithms",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.init(cmd)
		},
	}
	root.SetContext(ctx)
	addPersistentFlags(root.PersistentFlags(), o)

	root.AddCommand(
		newRunCommand(o),
		newParseCommand(o),
		newFormatCommand(o),
		newSaveCommand(o),
		newLoadCommand(o),
		newListCommand(o),
		newDeleteCommand(o),
		newServeCommand(o),
		newColorCommand(o),
		newGenerateCommand(o),
	)
	return root
}

func addPersistentFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVarP(&o.configPath, "config", "c", "", "path to a YAML config file")
	fs.StringVar(&o.storePath, "store", "", "graph database file (overrides config)")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")
}

func (o *options) init(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.storePath != "" {
		cfg.Store.Path = o.storePath
	}
	o.cfg = cfg
	o.logger = logging.NewWithWriter(cfg.Logging, cmd.ErrOrStderr())
	if o.verbose {
		o.logger.SetLevel(logrus.DebugLevel)
	}
	return nil
}

func (o *options) openStore() (*store.BoltStore, error) {
	return store.Open(o.cfg.Store.Path, o.cfg.Store.Timeout, o.logger)
}
