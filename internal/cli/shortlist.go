package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/staffer/internal/domain/types"
)

// ErrMissingProject is returned when neither a project ID nor --all is given.
var ErrMissingProject = errors.New("a project ID or --all is required")

func newShortlistCmd(opts *options) *cobra.Command {
	var (
		demo bool
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "shortlist [project-id]",
		Short: "Shortlist candidates for a project",
		Long: `Shortlist runs the staffing engine for one project, or for every
project in the catalog with --all, and prints up to five ranked candidates
with a recommendation for the top one.`,
		Example: `  staffctl shortlist P101
  staffctl shortlist P104 --demo -o json
  staffctl shortlist --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return ErrMissingProject
			}

			ctx := cmd.Context()
			svc, err := openService(ctx, opts)
			if err != nil {
				return err
			}
			defer svc.Stop()

			var shortlists []types.Shortlist
			if all {
				shortlists, err = svc.StaffAll(ctx)
			} else {
				var s types.Shortlist
				s, err = svc.Staff(ctx, args[0], demo)
				shortlists = []types.Shortlist{s}
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.outputFmt == formatJSON {
				if all {
					return writeJSON(w, shortlists)
				}
				return writeJSON(w, shortlists[0])
			}
			for i, s := range shortlists {
				if i > 0 {
					fmt.Fprintln(w)
				}
				if err := writeShortlist(w, s); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "explain the recommendation with engine scores")
	cmd.Flags().BoolVar(&all, "all", false, "shortlist every project in the catalog")
	return cmd
}
