package commands

import (
	"github.com/spf13/cobra"

	"github.com/five82/threds/internal/printer"
	"github.com/five82/threds/internal/route"
	"github.com/five82/threds/internal/threds"
)

func newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <path>",
		Short: "Show how a location path is interpreted",
		Long: `Decode a location path the way the interface does and print the
resulting view and its canonical path. Unrecognised paths fall back to home.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := route.Decode(args[0])
			out := cmd.OutOrStdout()

			printer.Field(out, "view", s.Kind().String())
			if s.Board != "" {
				board := threds.BoardID(s.Board)
				printer.Field(out, "board", threds.BoardLabel(board))
			}
			if s.ThreadID != "" {
				printer.Field(out, "thread", s.ThreadID)
			}
			printer.Field(out, "canonical", route.Encode(s))
			if _, ok := threds.LookupBoard(threds.BoardID(s.Board)); s.Board != "" && !ok {
				printer.Warning(out, "unknown board %q, the backend will reject it\n", s.Board)
			}
			return nil
		},
	}
}
