package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/contractor-evaluation/internal/cli"
	"github.com/Veraticus/contractor-evaluation/internal/config"
	"github.com/Veraticus/contractor-evaluation/internal/evaluation"
	"github.com/Veraticus/contractor-evaluation/internal/model"
	"github.com/spf13/cobra"
)

func submitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit [project-id]",
		Short: "Submit an evaluation without prompting",
		Long: `Submit an evaluation from flags. Every required category must be rated:
workQuality, finishing, communication, serviceAttitude, pricing and
overallSatisfaction. timeManagement is optional.`,
		Example: `  evalform submit a01 \
    --rating workQuality=5 --rating finishing=4 --rating communication=4 \
    --rating serviceAttitude=5 --rating pricing=3 --rating overallSatisfaction=5 \
    --comments "마감이 깔끔했습니다"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSubmit,
	}

	cmd.Flags().StringArrayP("rating", "r", nil, "Rating as category=value (repeatable)")
	cmd.Flags().StringP("comments", "c", "", "Free-text comments")

	return cmd
}

func runSubmit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	ratingFlags, _ := cmd.Flags().GetStringArray("rating")
	comments, _ := cmd.Flags().GetString("comments")

	ratings, err := parseRatings(ratingFlags)
	if err != nil {
		return err
	}

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

	out := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	form := evaluation.New(backend,
		evaluation.WithProjectID(projectID),
		evaluation.WithDefaultProjectID(formCfg.DefaultProjectID),
		evaluation.WithNotifier(out),
	)
	if !form.HasValidProjectID() {
		return evaluation.ErrNoProjectID
	}

	for c, v := range ratings {
		if err := form.Rate(c, v); err != nil {
			return err
		}
	}
	form.SetComments(comments)

	result, err := form.Submit(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cli.SubtleStyle.Render("레코드 ID:"), result.ID)
	return err
}

// parseRatings parses category=value pairs. Later pairs override earlier ones.
func parseRatings(pairs []string) (map[model.Category]int, error) {
	ratings := make(map[model.Category]int, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid rating %q: expected category=value", pair)
		}

		c, err := model.ParseCategory(strings.TrimSpace(key))
		if err != nil {
			return nil, err
		}

		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || value < 1 || value > model.MaxStars {
			return nil, fmt.Errorf("%w: %s=%s", model.ErrInvalidRating, key, raw)
		}
		ratings[c] = value
	}
	return ratings, nil
}
