// internal/command/export.go
package command

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jdamm/matlist/internal/export"
	"github.com/jdamm/matlist/internal/output"
	"github.com/jdamm/matlist/internal/snapshot"
)

type ExportCommand struct {
}

func NewExportCommand() *cobra.Command {
	ec := &ExportCommand{}

	cmd := &cobra.Command{
		Use:   "export [snapshot-file]",
		Short: "Flatten a model snapshot into a delimited material list",
		Args:  cobra.ExactArgs(1),
		RunE:  ec.Run,
	}

	cmd.Flags().StringP("output", "o", "", "Output file path (default: timestamped name in the output directory)")
	cmd.Flags().String("delimiter", "", "Field delimiter, \",\" or \";\" (default: configuration)")
	cmd.Flags().String("decimal", "", "Decimal separator, \".\" or \",\" (default: configuration)")
	cmd.Flags().Bool("dry-run", false, "Aggregate without writing a file")
	cmd.Flags().StringP("format", "f", "table", "Summary format (table or json)")

	return cmd
}

func (c *ExportCommand) Run(cmd *cobra.Command, args []string) error {
	cmdCtx, err := RequireCommandContext(cmd.Context())
	if err != nil {
		return err
	}
	cfg := cmdCtx.Config

	outputPath, _ := cmd.Flags().GetString("output")
	delimiter, _ := cmd.Flags().GetString("delimiter")
	decimal, _ := cmd.Flags().GetString("decimal")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	format, _ := cmd.Flags().GetString("format")

	// Flag overrides are re-validated so a bad flag fails before any work
	if delimiter != "" {
		cfg.Delimiter = delimiter
	}
	if decimal != "" {
		cfg.DecimalSeparator = decimal
	}
	if delimiter != "" || decimal != "" {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	doc, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}

	dest := ""
	if !dryRun {
		dest = outputPath
		if dest == "" {
			dest = filepath.Join(cfg.OutputDir, export.DefaultFileName(time.Now()))
		}
	}

	result, err := export.Run(cfg, cmdCtx.Logger, doc, dest)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	printer := output.NewPrinter(output.Format(format), false)
	if !result.Aborted() {
		printer.Success(fmt.Sprintf("exported %d rows", result.Rows))
	}
	return printer.PrintResult(result)
}
