// matlist flattens building-model snapshots into delimited material lists
// for downstream spreadsheet analysis.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdamm/matlist/internal/command"
	"github.com/jdamm/matlist/internal/config"
	"github.com/jdamm/matlist/internal/logger"
)

var (
	version     = "dev"
	cfgFile     string
	globalFlags = struct {
		debug bool
	}{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "matlist",
		Short: "matlist - material list export for building model snapshots",
		Long: `matlist walks a model snapshot exported from the host CAD tool,
resolves geometric and material parameters off every element, and writes
the result to a delimited text file, one row per element and layer.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			log := logger.GetLogger()
			if globalFlags.debug {
				log.SetLevel(logger.DEBUG)
			} else if lvl := os.Getenv("MATLIST_LOG_LEVEL"); lvl != "" {
				log.SetLevel(logger.ParseLevel(lvl))
			}

			cmd.SetContext(command.WithCommandContext(cmd.Context(), &command.CommandContext{
				Config: cfg,
				Logger: log,
			}))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Configuration file (default: .matlist.yaml if present)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.debug, "debug", false, "Enable debug output")

	rootCmd.AddCommand(
		command.NewExportCommand(),
		command.NewInspectCommand(),
		command.NewColumnsCommand(),
	)

	rootCmd.SetVersionTemplate("matlist version {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
