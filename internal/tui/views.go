package tui

import (
	"fmt"

	"github.com/Veraticus/contractor-evaluation/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Screen text.
const (
	textTitle         = "시공사 평가"
	textProject       = "프로젝트"
	textContractor    = "시공사"
	textPhone         = "연락처"
	textAddress       = "주소"
	textComments      = "평가 의견"
	textSubmit        = "평가 제출"
	textSubmitting    = "제출 중..."
	textLoading       = "프로젝트 정보를 불러오는 중..."
	textNoProject     = "프로젝트 ID가 없습니다. 평가를 제출할 수 없습니다."
	textRequiredHint  = "* 필수 항목"
	textCostHintLabel = "가성비 (서비스 태도·가격 평균)"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render(textTitle),
		m.renderProject(),
		"",
		m.ratings.View(),
		m.renderCostEffectiveness(),
		m.theme.StatusPending.Render(textRequiredHint),
		"",
		m.theme.Bold.Render(textComments),
		m.comments.View(),
		"",
		m.renderSubmit(),
	}

	if toast := m.toast.View(); toast != "" {
		sections = append(sections, "", toast)
	}
	if m.config.ShowHelp {
		sections = append(sections, "", m.help.View(m.keymap))
	}

	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderProject renders the contractor card.
func (m Model) renderProject() string {
	if !m.form.HasValidProjectID() {
		return m.theme.StatusError.Render(textNoProject)
	}
	if m.loading {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.theme.StatusPending.Render(textLoading))
	}

	project := m.form.Project()
	name := m.form.ProjectID()
	if project != nil && project.Name != "" {
		name = project.Name
	}

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.theme.Label.Render(label), m.theme.Normal.Render(value))
	}
	card := lipgloss.JoinVertical(lipgloss.Left,
		row(textProject, name),
		row(textContractor, m.form.ContractorInfo()),
		row(textPhone, m.form.ContractorPhone()),
		row(textAddress, m.form.ContractorAddress()),
	)
	return m.theme.RoundedBox.Render(card)
}

// renderCostEffectiveness previews the derived score once both inputs are set.
func (m Model) renderCostEffectiveness() string {
	ratings := m.form.Ratings()
	if ratings.Get(model.CategoryServiceAttitude) == 0 || ratings.Get(model.CategoryPricing) == 0 {
		return ""
	}
	return m.theme.Subtitle.Render(fmt.Sprintf("%s: %d/%d", textCostHintLabel, ratings.CostEffectiveness(), model.MaxStars))
}

// renderSubmit renders the submit button.
func (m Model) renderSubmit() string {
	if m.submitting {
		return m.theme.Button.Render(m.spinner.View() + " " + textSubmitting)
	}
	if m.focus == focusSubmit {
		return m.theme.ButtonFocused.Render(textSubmit)
	}
	return m.theme.Button.Render(textSubmit)
}
