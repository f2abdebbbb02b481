// internal/command/columns.go
package command

import (
	"github.com/spf13/cobra"

	"github.com/jdamm/matlist/internal/export"
	"github.com/jdamm/matlist/internal/output"
)

type ColumnsCommand struct {
}

func NewColumnsCommand() *cobra.Command {
	cc := &ColumnsCommand{}

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Show the export columns and the parameter keys behind them",
		Args:  cobra.NoArgs,
		RunE:  cc.Run,
	}

	cmd.Flags().StringP("format", "f", "table", "Output format (table or json)")

	return cmd
}

func (c *ColumnsCommand) Run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	printer := output.NewPrinter(output.Format(format), false)
	return printer.PrintColumns(export.Describe())
}
