package main

import (
	"fmt"

	"github.com/Veraticus/contractor-evaluation/internal/cli"
	"github.com/Veraticus/contractor-evaluation/internal/config"
	"github.com/Veraticus/contractor-evaluation/internal/model"
	"github.com/spf13/cobra"
)

func projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Inspect projects on the configured backend",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show [project-id]",
		Short: "Show a project and its contractor",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runProjectShow,
	})

	return cmd
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	formCfg, err := config.LoadFormConfig()
	if err != nil {
		return err
	}
	projectID := formCfg.DefaultProjectID
	if len(args) > 0 {
		projectID = args[0]
	}
	if projectID == "" {
		return fmt.Errorf("project id is required")
	}

	backend, cleanup, err := initBackend(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	project, err := backend.FetchProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to fetch project %s: %w", projectID, err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(projectTitle(project), formatContractor(project)))
	return err
}

func projectTitle(p *model.ProjectSnapshot) string {
	if p.Name != "" {
		return fmt.Sprintf("%s (%s)", p.Name, p.ID)
	}
	return p.ID
}

func formatContractor(p *model.ProjectSnapshot) string {
	return fmt.Sprintf("%s %s\n%s %s\n%s %s",
		cli.BoldStyle.Render("시공사:"), p.ContractorName(),
		cli.BoldStyle.Render("연락처:"), p.ContractorPhone(),
		cli.BoldStyle.Render("주소:"), p.ContractorAddress(),
	)
}
