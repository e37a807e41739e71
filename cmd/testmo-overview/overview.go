package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/testmotools/go-testmo/ir"
	"github.com/testmotools/go-testmo/report"
	"github.com/testmotools/go-testmo/testmo"
)

var (
	overviewFilters string
	overviewRuns    int
	activeOnly      bool
)

func init() {
	overviewCmd.Flags().StringVar(&overviewFilters, "filter", "",
		"comma separated filter names, see --list-filters")
	overviewCmd.Flags().IntVar(&overviewRuns, "runs", 5,
		"maximum number of runs to include, newest first (0 for all)")
	overviewCmd.Flags().BoolVar(&activeOnly, "active", false,
		"only include runs that are started and not closed")
	overviewCmd.Flags().Bool("list-filters", false, "list available filters and exit")
	rootCmd.AddCommand(overviewCmd)
}

var overviewCmd = &cobra.Command{
	Use:   "overview <project name or id>",
	Short: "Render a result overview for a project.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list-filters"); list {
			for _, f := range report.All() {
				fmt.Printf("%-24s %s\n", f.Name(), f.Description())
			}
			return nil
		}
		if len(args) != 1 {
			return fmt.Errorf("a project name or id is required")
		}

		filters, err := report.Select(overviewFilters)
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		projects, err := client.Projects(ctx)
		if err != nil {
			return err
		}
		project, err := testmo.FindProject(projects, args[0])
		if err != nil {
			return err
		}
		log.Info().Str("project", project.Name).Int64("id", project.ID).Msg("building overview")

		runs, err := client.ProjectRuns(ctx, project.ID)
		if err != nil {
			return err
		}

		var rows []report.Row
		included := 0
		// newest runs come last in the reply
		for i := len(runs) - 1; i >= 0; i-- {
			run := runs[i]
			if activeOnly && !report.RunIsActive(run) {
				continue
			}
			if overviewRuns > 0 && included == overviewRuns {
				break
			}
			runID, err := report.RunID(run)
			if err != nil {
				return err
			}
			results, err := client.RunResults(ctx, runID)
			if err != nil {
				return err
			}
			runRows, err := report.Rows(report.RunName(run), ir.FromSlice(results))
			if err != nil {
				return err
			}
			rows = append(rows, runRows...)
			included++
		}

		descriptions := make([]string, 0, len(filters))
		for _, f := range filters {
			rows = f.Apply(rows)
			descriptions = append(descriptions, f.Description())
		}
		if len(descriptions) > 0 {
			fmt.Printf("Test Overview %s (%s)\n", project.Name, strings.Join(descriptions, " | "))
		} else {
			fmt.Printf("Test Overview %s (no filter)\n", project.Name)
		}
		report.Render(os.Stdout, rows, report.Tally(rows))
		return nil
	},
}
