package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/PrincetonUniversity/fusionrate"
)

var (
	tableDir string
	verbose  bool
	logger   *zap.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:   "fusionrate",
		Short: "Fusion cross sections and thermal rate coefficients",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if verbose {
				cfg = zap.NewDevelopmentConfig()
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&tableDir, "tables", "", "directory of stored data tables")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging, including degraded-accuracy notices")

	root.AddCommand(reactionsCmd(), xsCmd(), rateCmd())
	return root.Execute()
}

// libraryConfig is the facade Config shared by the subcommands.
func libraryConfig(scheme fusionrate.Scheme) fusionrate.Config {
	return fusionrate.Config{
		TableDir: tableDir,
		Scheme:   scheme,
		Logger:   logger,
	}
}
