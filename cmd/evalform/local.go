package main

import (
	"fmt"
	"strconv"

	"github.com/Veraticus/contractor-evaluation/internal/cli"
	"github.com/Veraticus/contractor-evaluation/internal/model"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func localCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "local",
		Short: "Manage the local evaluation database",
		Long: `Manage the SQLite database used by the local backend. Seed projects
here, then run "evalform evaluate --backend local <project-id>".`,
	}

	cmd.AddCommand(localSeedCmd())
	cmd.AddCommand(localProjectsCmd())
	cmd.AddCommand(localEvaluationsCmd())

	return cmd
}

func localSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed <project-id>",
		Short: "Add or update a project and its contractor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			contractor, _ := cmd.Flags().GetString("contractor")
			phone, _ := cmd.Flags().GetString("phone")
			street, _ := cmd.Flags().GetString("street")
			description, _ := cmd.Flags().GetString("description")

			project := &model.ProjectSnapshot{ID: args[0], Name: name}
			account := model.ContractorAccount{
				Name:          contractor,
				Phone:         phone,
				BillingStreet: street,
				Description:   description,
			}
			if account != (model.ContractorAccount{}) {
				project.Contractor = &account
			}

			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveProject(cmd.Context(), project); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Saved project "+project.ID))
			return err
		},
	}

	cmd.Flags().String("name", "", "Project name")
	cmd.Flags().String("contractor", "", "Contractor account name")
	cmd.Flags().String("phone", "", "Contractor phone")
	cmd.Flags().String("street", "", "Contractor billing street")
	cmd.Flags().String("description", "", "Contractor display name")

	return cmd
}

func localProjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List projects in the local database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			projects, err := store.ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("No projects. Add one with: evalform local seed <project-id>"))
				return err
			}

			rows := lo.Map(projects, func(p model.ProjectSnapshot, _ int) []string {
				return []string{p.ID, p.Name, p.ContractorName(), p.ContractorPhone()}
			})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderTable([]string{"ID", "NAME", "CONTRACTOR", "PHONE"}, rows))
			return err
		},
	}
}

func localEvaluationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluations",
		Short: "List stored evaluations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectID, _ := cmd.Flags().GetString("project")

			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			evaluations, err := store.ListEvaluations(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			if len(evaluations) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("No evaluations"))
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderTable(evaluationHeaders, lo.Map(evaluations, evaluationRow)))
			return err
		},
	}

	cmd.Flags().String("project", "", "Only show evaluations for this project")

	return cmd
}

var evaluationHeaders = []string{"ID", "PROJECT", "QUALITY", "TIMELINESS", "COMM", "COST", "OVERALL", "CREATED", "COMMENTS"}

func evaluationRow(e model.Evaluation, _ int) []string {
	return []string{
		e.ID,
		e.ProjectID,
		strconv.Itoa(e.WorkQuality),
		strconv.Itoa(e.Timeliness),
		strconv.Itoa(e.Communication),
		strconv.Itoa(e.CostEffectiveness),
		strconv.Itoa(e.OverallSatisfaction),
		e.CreatedAt.Local().Format("2006-01-02 15:04"),
		e.Comments,
	}
}
