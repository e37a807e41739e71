package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/testmotools/go-testmo/report"
	"github.com/testmotools/go-testmo/testmo"
)

func init() {
	rootCmd.AddCommand(projectsCmd)
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the projects of the configured instance.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		projects, err := client.Projects(cmd.Context())
		if err != nil {
			return err
		}
		choices, err := testmo.ProjectChoices(projects)
		if err != nil {
			return err
		}
		report.RenderProjects(os.Stdout, choices)
		return nil
	},
}
