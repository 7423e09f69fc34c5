// Package cli implements the staffctl command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	app "github.com/okian/staffer/internal/app"
	"github.com/okian/staffer/internal/config"
	"github.com/okian/staffer/pkg/logger"
)

// Output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
)

var (
	// Version info set from main
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

// options holds the global flags.
type options struct {
	catalogPath string
	outputFmt   string
	verbose     bool
}

// NewRootCmd builds the staffctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "staffctl",
		Short: "Shortlist employees for staffing projects",
		Long: `staffctl runs the staffing engine against a project catalog.

It filters employees by seniority, availability and location, scores the
rest on seniority, skills, availability and performance, and prints the
top five candidates with a recommendation.

The catalog defaults to the embedded demo data. Use --catalog or
STAFFER_CATALOG_PATH to point at a YAML file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch opts.outputFmt {
			case formatTable, formatJSON:
			default:
				return fmt.Errorf("unknown output format: %s", opts.outputFmt)
			}
			return initLogger(cmd.ErrOrStderr(), opts.verbose)
		},
	}

	root.PersistentFlags().StringVarP(&opts.catalogPath, "catalog", "c", "",
		"catalog file (default: $STAFFER_CATALOG_PATH or the embedded demo catalog)")
	root.PersistentFlags().StringVarP(&opts.outputFmt, "output", "o", formatTable,
		"output format (table, json)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"log engine activity to stderr")

	root.AddCommand(
		newVersionCmd(),
		newProjectsCmd(opts),
		newEmployeesCmd(opts),
		newShortlistCmd(opts),
	)
	return root
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func initLogger(w io.Writer, verbose bool) error {
	if err := logger.Init(logger.WithOutput(w)); err != nil {
		return err
	}
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logger.SetLevelString(level)
}

// openService loads configuration, applies the flags and starts a service.
func openService(ctx context.Context, opts *options) (*app.Service, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	if opts.catalogPath != "" {
		cfg.CatalogPath = opts.catalogPath
	}

	svc := app.New(
		app.WithLogger(logger.Named("staffctl")),
		app.WithCatalogPath(cfg.CatalogPath),
		app.WithBatchConcurrency(cfg.BatchConcurrency),
		app.WithConfidenceThresholds(cfg.HighConfidenceScore, cfg.MediumConfidenceScore),
		app.WithKnowledgeTransferURL(cfg.KnowledgeTransferURL),
	)
	if err := svc.Start(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// versionCmd shows version information
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "staffctl %s\n", version)
			fmt.Fprintf(w, "  commit: %s\n", commit)
			fmt.Fprintf(w, "  built:  %s\n", buildTime)
		},
	}
}

// Main runs staffctl and returns the process exit status.
func Main() int {
	if err := Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
