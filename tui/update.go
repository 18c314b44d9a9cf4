// ABOUTME: Event handling and state updates for the TUI
// ABOUTME: Implements the Bubble Tea Update() function and message handlers

package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"chartpick/catalog"
	"chartpick/config"
	"chartpick/picker"
)

// defaultCount is substituted when the count field holds invalid text,
// matching the level fields' use-a-default-and-keep-going behavior.
const defaultCount = 10

// Update handles messages and updates the model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		viewportWidth := msg.Width - controlPanelWidth - panelPadding
		if viewportWidth < minViewportWidth {
			viewportWidth = minViewportWidth
		}

		viewportHeight := msg.Height - totalUIChrome
		if viewportHeight < minViewportHeight {
			viewportHeight = minViewportHeight
		}

		m.viewport.Width = viewportWidth
		m.viewport.Height = viewportHeight
		m.viewport.YOffset = 0
		m.updateViewportContent()

		return m, nil

	case catalogChangedMsg:
		return m, tea.Batch(
			reloadCatalog(m.catalogPath),
			waitForCatalogChange(m.watcher, m.debugf), // Continue watching
		)

	case catalogReloadedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Catalog reload failed: %v", msg.err)

			return m, nil
		}

		m.debugf("[TUI] Catalog reloaded: %d entries", msg.cat.Len())
		m.catalog = msg.cat
		m.recomputePool()
		m.updateViewportContent()

		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m.handleQuit()

		case key.Matches(msg, keys.Next):
			m.setFocus((m.focused + 1) % m.focusLimit())

		case key.Matches(msg, keys.Prev):
			m.setFocus((m.focused + m.focusLimit() - 1) % m.focusLimit())

		case key.Matches(msg, keys.Pick):
			m.pick()
			m.updateViewportContent()

		case key.Matches(msg, keys.Up):
			m.stepFocusedLevel(true)

		case key.Matches(msg, keys.Down):
			m.stepFocusedLevel(false)

		case key.Matches(msg, keys.Left):
			if m.onToggleRow() {
				m.moveToggleCursor(-1)
			} else {
				return m.updateFocusedInput(msg)
			}

		case key.Matches(msg, keys.Right):
			if m.onToggleRow() {
				m.moveToggleCursor(1)
			} else {
				return m.updateFocusedInput(msg)
			}

		case key.Matches(msg, keys.Toggle) && m.onToggleRow():
			m.toggleCurrent()

		default:
			return m.updateFocusedInput(msg)
		}
	}

	return m, nil
}

// handleQuit saves the session config and quits.
func (m *model) handleQuit() (model, tea.Cmd) {
	m.quitting = true
	m.syncConfig()

	if err := config.SaveConfig(m.configPath, m.sharedConfig.Get()); err != nil {
		m.debugf("[TUI] Failed to save config on quit: %v", err)
		// Continue anyway - don't block quit on config save failure
	}

	return *m, tea.Quit
}

// focusLimit returns the number of reachable controls: the version row
// is skipped when no index is loaded.
func (m *model) focusLimit() int {
	if m.versions.Len() > 0 {
		return focusableCount
	}

	return focusVersions
}

// setFocus moves input focus, blurring the text inputs as needed.
func (m *model) setFocus(target int) {
	m.focused = target

	m.minInput.Blur()
	m.maxInput.Blur()
	m.countInput.Blur()

	switch target {
	case focusMin:
		m.minInput.Focus()
	case focusMax:
		m.maxInput.Focus()
	case focusCount:
		m.countInput.Focus()
	}
}

// onToggleRow reports whether focus is on one of the toggle rows.
func (m *model) onToggleRow() bool {
	return m.focused == focusTiers || m.focused == focusVariants || m.focused == focusVersions
}

// stepFocusedLevel applies grid stepping to the focused level field.
// Unparseable text becomes the default bound first, like the original
// controls which recover from garbage on the first arrow press.
func (m *model) stepFocusedLevel(up bool) {
	var get func() string

	var set func(string)

	switch m.focused {
	case focusMin:
		get, set = m.minInput.Value, m.minInput.SetValue
	case focusMax:
		get, set = m.maxInput.Value, m.maxInput.SetValue
	default:
		return
	}

	v, err := picker.ParseLevel(get())
	if err != nil {
		set(catalog.FormatLevel(10))
		m.afterInputChange()

		return
	}

	if up {
		v = picker.StepUp(v)
	} else {
		v = picker.StepDown(v)
	}

	set(catalog.FormatLevel(v))
	m.afterInputChange()
}

// moveToggleCursor moves the cursor within the focused toggle row.
func (m *model) moveToggleCursor(delta int) {
	clamp := func(v, n int) int {
		if v < 0 {
			return 0
		}

		if v >= n {
			return n - 1
		}

		return v
	}

	switch m.focused {
	case focusTiers:
		m.tierCursor = clamp(m.tierCursor+delta, len(tierOrder))
	case focusVariants:
		m.variantCursor = clamp(m.variantCursor+delta, 2)
	case focusVersions:
		m.versionCursor = clamp(m.versionCursor+delta, len(catalog.GameVersions))
	}
}

// tierOrder fixes the display order of the tier toggles.
var tierOrder = [...]catalog.Difficulty{catalog.Basic, catalog.Advanced, catalog.Extreme}

// toggleCurrent flips the toggle under the cursor. Tier and variant
// sets refuse to drop their last member; the version set may empty
// (an empty version set legitimately matches nothing).
func (m *model) toggleCurrent() {
	switch m.focused {
	case focusTiers:
		d := tierOrder[m.tierCursor]
		if m.tiers[d] && enabledCount(m.tiers) == 1 {
			return
		}

		m.tiers[d] = !m.tiers[d]

	case focusVariants:
		v := m.variantCursor + 1
		if m.variants[v] && !m.variants[3-v] {
			return
		}

		m.variants[v] = !m.variants[v]

	case focusVersions:
		name := catalog.GameVersions[m.versionCursor]
		m.versionSet[name] = !m.versionSet[name]
	}

	m.afterInputChange()
}

// enabledCount counts enabled tiers.
func enabledCount(set map[catalog.Difficulty]bool) int {
	n := 0

	for _, on := range set {
		if on {
			n++
		}
	}

	return n
}

// updateFocusedInput forwards a message to the focused text input and
// recomputes the pool from the new text.
func (m model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focused {
	case focusMin:
		m.minInput, cmd = m.minInput.Update(msg)
	case focusMax:
		m.maxInput, cmd = m.maxInput.Update(msg)
	case focusCount:
		m.countInput, cmd = m.countInput.Update(msg)
	default:
		return m, nil
	}

	m.afterInputChange()

	return m, cmd
}

// afterInputChange recomputes derived state after any criteria change.
func (m *model) afterInputChange() {
	m.recomputePool()
	m.syncConfig()
}

// recomputePool rebuilds the filtered pool from current inputs. Invalid
// level text falls back to the default bounds so filtering keeps
// working; the "whole numbers below 9" violation is surfaced
// separately.
func (m *model) recomputePool() {
	m.inputErr = ""

	minLevel, err := picker.ParseLevel(m.minInput.Value())
	if err != nil {
		if errors.Is(err, picker.ErrLevelNeedsInteger) {
			m.inputErr = "Levels 1-8 take whole numbers only"
		}

		minLevel = picker.DefaultMinLevel
	}

	maxLevel, err := picker.ParseLevel(m.maxInput.Value())
	if err != nil {
		if errors.Is(err, picker.ErrLevelNeedsInteger) {
			m.inputErr = "Levels 1-8 take whole numbers only"
		}

		maxLevel = picker.DefaultMaxLevel
	}

	crit := picker.Criteria{
		MinLevel:     minLevel,
		MaxLevel:     maxLevel,
		Difficulties: m.tiers,
		Variants:     m.variants,
	}

	if m.versionsOn {
		crit.Versions = m.versionSet
	}

	m.pool = picker.Filter(m.catalog, crit, m.versions)
}

// pick draws a fresh result set from the current pool, replacing the
// previous one wholesale.
func (m *model) pick() {
	m.errMsg = ""

	count, err := strconv.Atoi(strings.TrimSpace(m.countInput.Value()))
	if err != nil || count <= 0 {
		count = defaultCount
	}

	results, err := m.sampler.Pick(m.pool, count)
	if err != nil {
		m.results = nil
		m.errMsg = errorMessage(err)
		m.debugf("[TUI] Pick failed: %v", err)

		return
	}

	m.results = results
	m.debugf("[TUI] Picked %d of %d (pool %d)", len(results), count, len(m.pool))
}

// errorMessage renders sampler errors for the message line.
func errorMessage(err error) string {
	var countErr *picker.CountError
	if errors.As(err, &countErr) {
		return fmt.Sprintf("Only %d songs in range, lower the count", countErr.PoolSize)
	}

	if errors.Is(err, picker.ErrEmptyPool) {
		return "No songs in the selected range"
	}

	return err.Error()
}

// syncConfig mirrors the current UI state into the shared config so a
// quit (or an external reader) sees the latest settings.
func (m *model) syncConfig() {
	cfg := m.sharedConfig.Get()

	cfg.MinLevel = m.minInput.Value()
	cfg.MaxLevel = m.maxInput.Value()

	if count, err := strconv.Atoi(strings.TrimSpace(m.countInput.Value())); err == nil && count > 0 {
		cfg.Count = count
	}

	cfg.Difficulties = nil
	for _, d := range tierOrder {
		if m.tiers[d] {
			cfg.Difficulties = append(cfg.Difficulties, strings.ToLower(d.String()))
		}
	}

	cfg.Variants = nil
	for _, v := range [...]int{1, 2} {
		if m.variants[v] {
			cfg.Variants = append(cfg.Variants, v)
		}
	}

	cfg.VersionFilter = m.versionsOn

	cfg.Versions = nil
	for _, name := range catalog.GameVersions {
		if m.versionSet[name] {
			cfg.Versions = append(cfg.Versions, name)
		}
	}

	m.sharedConfig.Update(cfg)
}
