package commands

import (
	"github.com/spf13/cobra"

	"github.com/five82/threds/internal/app"
	"github.com/five82/threds/internal/printer"
)

func newStatusCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether the Threds backend is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Open(flags.options())
			if err != nil {
				return printer.Error(cmd.ErrOrStderr(), "Cannot start threds", err.Error(), nil)
			}
			defer func() { _ = s.Close() }()

			out := cmd.OutOrStdout()
			snap := s.Probe(cmd.Context())
			printer.Field(out, "api", s.Client.BaseURL())
			if snap.Online {
				printer.Success(out, "online\n")
				return nil
			}

			explanation := "The backend did not answer GET /up."
			if snap.LastError != nil {
				explanation = snap.LastError.Error()
			}
			return printer.Error(cmd.ErrOrStderr(), "Backend offline", explanation, []string{
				"Start the Threds API server",
				"Point threds at it with --api or THREDS_API_URL",
			})
		},
	}
}
