package cli

import (
	"github.com/spf13/cobra"
)

func newEmployeesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "employees",
		Short: "List catalog employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc, err := openService(ctx, opts)
			if err != nil {
				return err
			}
			defer svc.Stop()

			employees, err := svc.Employees(ctx)
			if err != nil {
				return err
			}
			if opts.outputFmt == formatJSON {
				return writeJSON(cmd.OutOrStdout(), employees)
			}
			return writeEmployeesTable(cmd.OutOrStdout(), employees)
		},
	}
}
