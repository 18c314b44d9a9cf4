// ABOUTME: Rendering and display functions for the TUI
// ABOUTME: Implements the Bubble Tea View() function and all render helpers

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chartpick/catalog"
)

// View renders the TUI
func (m model) View() string {
	if m.quitting {
		return "Saving config and exiting...\n"
	}

	leftPanel := m.renderControls()
	rightPanel := m.renderResults()

	panelHeight := m.height - (statusBarHeight + messageHeight + helpHeight + 1)

	leftPanelStyle := lipgloss.NewStyle().
		Width(controlPanelWidth).
		Height(panelHeight).
		Padding(0, 1)

	rightPanelWidth := m.width - controlPanelWidth - panelPadding
	if rightPanelWidth < minViewportWidth*2 {
		rightPanelWidth = minViewportWidth * 2
	}

	rightPanelStyle := lipgloss.NewStyle().
		Width(rightPanelWidth).
		Height(panelHeight).
		Padding(0, 1)

	combined := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanelStyle.Render(leftPanel),
		rightPanelStyle.Render(rightPanel),
	)

	return combined + "\n" + m.renderStatus() + "\n" + m.renderMessage() + "\n" + m.renderHelp()
}

// renderControls renders the filter control panel.
func (m model) renderControls() string {
	var s string

	s += titleStyle.Render("Chart picker") + "\n\n"

	s += m.renderField(focusMin, "Min level", m.minInput.View()) + "\n"
	s += m.renderField(focusMax, "Max level", m.maxInput.View()) + "\n"
	s += m.renderField(focusCount, "Count", m.countInput.View()) + "\n\n"

	s += m.renderToggleRow(focusTiers, "Tiers", m.renderTiers()) + "\n"
	s += m.renderToggleRow(focusVariants, "Charts", m.renderVariants()) + "\n"

	if m.versions.Len() > 0 {
		s += m.renderToggleRow(focusVersions, "Versions", m.renderVersions()) + "\n"
	}

	return s
}

// renderField renders a labeled text input line.
func (m model) renderField(focus int, label, input string) string {
	line := fmt.Sprintf("%-10s %s", label, input)

	if m.focused == focus {
		return focusedLabelStyle.Render(line)
	}

	return labelStyle.Render(line)
}

// renderToggleRow renders a labeled toggle group line.
func (m model) renderToggleRow(focus int, label, toggles string) string {
	line := fmt.Sprintf("%-10s %s", label, toggles)

	if m.focused == focus {
		return focusedLabelStyle.Render(line)
	}

	return labelStyle.Render(line)
}

// renderTiers renders the difficulty tier toggles.
func (m model) renderTiers() string {
	parts := make([]string, 0, len(tierOrder))

	for i, d := range tierOrder {
		parts = append(parts, m.renderToggle(shortTier(d), m.tiers[d], m.focused == focusTiers && i == m.tierCursor))
	}

	return strings.Join(parts, " ")
}

// renderVariants renders the chart variant toggles.
func (m model) renderVariants() string {
	parts := make([]string, 0, 2)

	for i, label := range [...]string{"primary", "[2]"} {
		parts = append(parts, m.renderToggle(label, m.variants[i+1], m.focused == focusVariants && i == m.variantCursor))
	}

	return strings.Join(parts, " ")
}

// renderVersions renders the game version toggles, wrapped to the
// panel width by lipgloss.
func (m model) renderVersions() string {
	parts := make([]string, 0, len(catalog.GameVersions))

	for i, name := range catalog.GameVersions {
		parts = append(parts, m.renderToggle(name, m.versionSet[name], m.focused == focusVersions && i == m.versionCursor))
	}

	return strings.Join(parts, " ")
}

// renderToggle renders one [x]/[ ] toggle.
func (m model) renderToggle(label string, on, underCursor bool) string {
	mark := "[ ]"
	style := toggleOffStyle

	if on {
		mark = "[x]"
		style = toggleOnStyle
	}

	s := mark + label

	if underCursor {
		return style.Underline(true).Render(s)
	}

	return style.Render(s)
}

// shortTier abbreviates tier names for the control panel.
func shortTier(d catalog.Difficulty) string {
	switch d {
	case catalog.Basic:
		return "BSC"
	case catalog.Advanced:
		return "ADV"
	default:
		return "EXT"
	}
}

// renderResults renders the picked chart list.
func (m model) renderResults() string {
	var s string

	title := "Results"
	if len(m.results) > 0 {
		title = fmt.Sprintf("Results (%d songs)", len(m.results))
	}

	s += titleStyle.Render(title) + "\n\n"

	header := fmt.Sprintf("%-3s %-5s %-8s %-30s %-20s", "#", "Lv", "Tier", "Title", "Artist")
	s += resultHeaderStyle.Render(header) + "\n"

	s += m.viewport.View()

	return s
}

// updateViewportContent builds and sets the result viewport content.
func (m *model) updateViewportContent() {
	if len(m.results) == 0 {
		m.viewport.SetContent(helpStyle.Render("Press enter to pick songs"))

		return
	}

	var content string

	for i, e := range m.results {
		tier := difficultyStyles[e.Difficulty].Render(fmt.Sprintf("%-8s", shortTier(e.Difficulty)))

		line := fmt.Sprintf("%-3d %-5s %s %-30s %-20s",
			i+1,
			catalog.FormatLevel(e.Level),
			tier,
			truncate(e.Title, 30),
			truncate(e.Artist, 20),
		)

		content += line + "\n"
	}

	m.viewport.SetContent(content)
}

// renderStatus renders the pool counter status bar.
func (m model) renderStatus() string {
	status := fmt.Sprintf("Pool: %d / %d charts", len(m.pool), m.catalog.Len())

	if m.catalogPath != "" {
		status += " | catalog: " + m.catalogPath
	}

	return statusStyle.Width(m.width).Render(status)
}

// renderMessage renders the validation/error message line.
func (m model) renderMessage() string {
	switch {
	case m.inputErr != "":
		return errorStyle.Render(" " + m.inputErr)
	case m.errMsg != "":
		return errorStyle.Render(" " + m.errMsg)
	default:
		return ""
	}
}

// renderHelp renders the help text.
func (m model) renderHelp() string {
	return helpStyle.Render(" tab: next field | ↑/↓: step level | ←/→: move | space: toggle | enter: pick | esc: quit")
}
