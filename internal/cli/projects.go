package cli

import (
	"github.com/spf13/cobra"
)

func newProjectsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "projects",
		Aliases: []string{"ls"},
		Short:   "List catalog projects",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc, err := openService(ctx, opts)
			if err != nil {
				return err
			}
			defer svc.Stop()

			projects, err := svc.Projects(ctx)
			if err != nil {
				return err
			}
			if opts.outputFmt == formatJSON {
				return writeJSON(cmd.OutOrStdout(), projects)
			}
			return writeProjectsTable(cmd.OutOrStdout(), projects)
		},
	}
}
