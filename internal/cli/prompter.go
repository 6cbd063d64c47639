package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/contractor-evaluation/internal/evaluation"
	"github.com/Veraticus/contractor-evaluation/internal/model"
	"github.com/Veraticus/contractor-evaluation/internal/service"
	"github.com/schollz/progressbar/v3"
)

// ErrAborted is returned when the user declines to submit.
var ErrAborted = errors.New("evaluation aborted")

// Prompter walks the user through the evaluation form one line at a time.
// It also renders form notifications, so it can be passed to
// evaluation.WithNotifier.
type Prompter struct {
	writer      io.Writer
	reader      *NonBlockingReader
	showSpinner bool
}

// NewPrompter creates a prompter with the given reader and writer.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		reader:      NewNonBlockingReader(reader),
		writer:      writer,
		showSpinner: true,
	}
}

// DisableSpinner turns off the progress spinner shown during backend calls.
func (p *Prompter) DisableSpinner() {
	p.showSpinner = false
}

// Notify implements service.Notifier by printing the notification.
func (p *Prompter) Notify(n service.Notification) {
	text := n.Title + ": " + n.Message
	var line string
	switch n.Variant {
	case service.VariantError:
		line = FormatError(text)
	case service.VariantSuccess:
		line = FormatSuccess(text)
	default:
		line = FormatInfo(text)
	}
	if _, err := fmt.Fprintln(p.writer, line); err != nil {
		slog.Warn("Failed to write notification", "error", err)
	}
}

// Run loads the project, collects ratings and comments, and submits after
// confirmation. Failed submissions can be retried without re-entering input.
func (p *Prompter) Run(ctx context.Context, form *evaluation.Form) (*model.SubmissionResult, error) {
	if form.HasValidProjectID() {
		// Load failures are already reported through Notify; the form stays usable.
		_ = p.withSpinner("프로젝트 정보를 불러오는 중...", func() error {
			return form.Load(ctx)
		})
	} else if _, err := fmt.Fprintln(p.writer, FormatWarning("프로젝트 ID가 없습니다")); err != nil {
		return nil, fmt.Errorf("failed to write warning: %w", err)
	}

	if _, err := fmt.Fprintln(p.writer, RenderBox("시공사 정보", p.formatProject(form))); err != nil {
		return nil, fmt.Errorf("failed to write project box: %w", err)
	}

	if err := p.collectRatings(ctx, form); err != nil {
		return nil, err
	}

	comments, err := p.promptLine(ctx, "평가 의견 (선택)")
	if err != nil {
		return nil, err
	}
	form.SetComments(comments)

	for {
		if _, err := fmt.Fprintln(p.writer, RenderBox("평가 요약", p.formatSummary(form))); err != nil {
			return nil, fmt.Errorf("failed to write summary: %w", err)
		}

		choice, err := p.promptChoice(ctx, "제출하시겠습니까? [y/n]", []string{"y", "n"})
		if err != nil {
			return nil, err
		}
		if choice == "n" {
			return nil, ErrAborted
		}

		var result *model.SubmissionResult
		submitErr := p.withSpinner("평가를 제출하는 중...", func() error {
			var err error
			result, err = form.Submit(ctx)
			return err
		})
		if submitErr == nil {
			if _, err := fmt.Fprintln(p.writer, SubtleStyle.Render("레코드 ID: "+result.ID)); err != nil {
				slog.Warn("Failed to write record id", "error", err)
			}
			return result, nil
		}

		if errors.Is(submitErr, evaluation.ErrIncompleteRatings) {
			if err := p.collectRatings(ctx, form); err != nil {
				return nil, err
			}
			continue
		}
		if ctx.Err() != nil {
			return nil, submitErr
		}

		retry, err := p.promptChoice(ctx, "다시 시도하시겠습니까? [r/q]", []string{"r", "q"})
		if err != nil {
			return nil, err
		}
		if retry == "q" {
			return nil, submitErr
		}
	}
}

// collectRatings prompts for every unrated category. Optional categories
// accept an empty answer.
func (p *Prompter) collectRatings(ctx context.Context, form *evaluation.Form) error {
	for _, c := range model.AllCategories() {
		if form.Rating(c) > 0 {
			continue
		}
		value, err := p.promptRating(ctx, c)
		if err != nil {
			return err
		}
		if value == 0 {
			continue
		}
		if err := form.Rate(c, value); err != nil {
			return err
		}
	}
	return nil
}

// promptRating reads a 1-5 value for c. Returns 0 when an optional
// category is skipped.
func (p *Prompter) promptRating(ctx context.Context, c model.Category) (int, error) {
	label := c.Label() + " (1-5)"
	if c.Required() {
		label += " *"
	} else {
		label += ", 건너뛰려면 Enter"
	}

	for {
		input, err := p.promptLine(ctx, label)
		if err != nil {
			return 0, err
		}
		if input == "" && !c.Required() {
			return 0, nil
		}

		value, convErr := strconv.Atoi(input)
		if convErr == nil && value >= 1 && value <= model.MaxStars {
			if _, err := fmt.Fprintln(p.writer, "  "+FormatStars(value)); err != nil {
				slog.Warn("Failed to write stars", "error", err)
			}
			return value, nil
		}

		if _, err := fmt.Fprintln(p.writer, FormatError("1에서 5 사이의 숫자를 입력해주세요.")); err != nil {
			slog.Warn("Failed to write error message", "error", err)
		}
	}
}

func (p *Prompter) promptLine(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	input, err := p.reader.ReadLine(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("input terminated")
		}
		return "", err
	}
	return input, nil
}

func (p *Prompter) promptChoice(ctx context.Context, prompt string, validChoices []string) (string, error) {
	for {
		input, err := p.promptLine(ctx, prompt)
		if err != nil {
			return "", err
		}

		choice := strings.ToLower(input)
		for _, valid := range validChoices {
			if choice == valid {
				return choice, nil
			}
		}

		if _, err := fmt.Fprintln(p.writer, FormatError("잘못된 선택입니다. 다시 입력해주세요.")); err != nil {
			slog.Warn("Failed to write error message", "error", err)
		}
	}
}

func (p *Prompter) formatProject(form *evaluation.Form) string {
	project := form.Project()
	name := form.ProjectID()
	if project != nil && project.Name != "" {
		name = project.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("프로젝트:"), name)
	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("시공사:"), form.ContractorInfo())
	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("연락처:"), form.ContractorPhone())
	fmt.Fprintf(&b, "%s %s", BoldStyle.Render("주소:"), form.ContractorAddress())
	return b.String()
}

func (p *Prompter) formatSummary(form *evaluation.Form) string {
	ratings := form.Ratings()

	var b strings.Builder
	for _, c := range model.AllCategories() {
		fmt.Fprintf(&b, "%-10s %s\n", c.Label(), FormatStars(ratings.Get(c)))
	}
	fmt.Fprintf(&b, "%-10s %s\n", "가성비", FormatStars(ratings.CostEffectiveness()))
	comments := form.Comments()
	if comments == "" {
		comments = SubtleStyle.Render("(없음)")
	}
	fmt.Fprintf(&b, "%s %s", BoldStyle.Render("의견:"), comments)
	return b.String()
}

// withSpinner runs fn while an indeterminate progress spinner is shown.
func (p *Prompter) withSpinner(description string, fn func() error) error {
	if !p.showSpinner {
		return fn()
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	err := fn()
	close(done)
	if finishErr := bar.Finish(); finishErr != nil {
		slog.Debug("Failed to finish spinner", "error", finishErr)
	}
	return err
}
