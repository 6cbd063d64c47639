package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Veraticus/contractor-evaluation/internal/cli"
	"github.com/Veraticus/contractor-evaluation/internal/config"
	"github.com/Veraticus/contractor-evaluation/internal/evaluation"
	"github.com/Veraticus/contractor-evaluation/internal/tui"
	"github.com/Veraticus/contractor-evaluation/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func evaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate [project-id]",
		Short: "Open the evaluation form for a project",
		Long: `Open the contractor evaluation form. The project id defaults to
form.default_project_id when omitted.

The full-screen form is used by default; --plain prompts line by line.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationFullScreen: "true"},
		RunE:        runEvaluate,
	}

	cmd.Flags().Bool("plain", false, "Use line-by-line prompts instead of the full-screen form")
	cmd.Flags().String("theme", "", "Color theme (default, catppuccin-mocha)")
	_ = viper.BindPFlag("form.theme", cmd.Flags().Lookup("theme"))

	return cmd
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	plain, _ := cmd.Flags().GetBool("plain")

	formCfg, err := config.LoadFormConfig()
	if err != nil {
		return err
	}

	backend, cleanup, err := initBackend(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	projectID := ""
	if len(args) > 0 {
		projectID = args[0]
	}

	if !plain {
		return tui.Run(ctx, backend,
			tui.WithProjectID(projectID),
			tui.WithDefaultProjectID(formCfg.DefaultProjectID),
			tui.WithToastDuration(formCfg.ToastDuration),
			tui.WithTheme(themes.GetTheme(formCfg.Theme)),
			tui.WithRequestTimeout(viper.GetDuration("backend.timeout")),
		)
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx = handler.HandleInterrupts(ctx, true)
	defer handler.Stop()

	prompter := cli.NewPrompter(os.Stdin, cmd.OutOrStdout())
	form := evaluation.New(backend,
		evaluation.WithProjectID(projectID),
		evaluation.WithDefaultProjectID(formCfg.DefaultProjectID),
		evaluation.WithNotifier(prompter),
		evaluation.WithToastDuration(formCfg.ToastDuration),
	)

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), cli.FormatTitle("시공사 평가")); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}

	_, err = prompter.Run(ctx, form)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cli.ErrAborted):
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("제출을 취소했습니다"))
		return nil
	case handler.WasInterrupted():
		return nil
	default:
		return err
	}
}
