// internal/command/inspect.go
package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdamm/matlist/internal/output"
	"github.com/jdamm/matlist/internal/snapshot"
)

type InspectCommand struct {
}

func NewInspectCommand() *cobra.Command {
	ic := &InspectCommand{}

	cmd := &cobra.Command{
		Use:   "inspect [snapshot-file]",
		Short: "Summarize a model snapshot without exporting",
		Args:  cobra.ExactArgs(1),
		RunE:  ic.Run,
	}

	cmd.Flags().StringP("format", "f", "table", "Output format (table or json)")

	return cmd
}

func (c *InspectCommand) Run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	doc, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}

	printer := output.NewPrinter(output.Format(format), false)
	if err := printer.PrintSnapshot(doc); err != nil {
		return fmt.Errorf("failed to print snapshot summary: %w", err)
	}
	return nil
}
