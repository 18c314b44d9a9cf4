// ABOUTME: Terminal UI model and core state management
// ABOUTME: Bubble Tea model for the interactive chart picker

// Package tui provides the interactive terminal UI for picking random
// charts from the catalog.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"chartpick/catalog"
	"chartpick/config"
	"chartpick/picker"
)

// Focusable controls, in tab order. The version row only takes part
// when a version index is loaded.
const (
	focusMin = iota
	focusMax
	focusCount
	focusTiers
	focusVariants
	focusVersions
	focusableCount
)

// Layout constants for UI dimensions
const (
	controlPanelWidth = 44 // Left panel width for filter controls
	panelPadding      = 2  // Horizontal spacing between panels

	// UI chrome heights (elements that reduce available viewport space)
	titleHeight     = 2
	headerHeight    = 1
	statusBarHeight = 1
	messageHeight   = 1
	helpHeight      = 1
	spacingHeight   = 2
	totalUIChrome   = titleHeight + headerHeight + statusBarHeight + messageHeight + helpHeight + spacingHeight

	// Minimum viewport dimensions to ensure usability
	minViewportWidth  = 20
	minViewportHeight = 5

	levelInputWidth = 6
	countInputWidth = 4
)

// model holds the TUI state
type model struct {
	// Dependencies (concrete types following Go philosophy)
	catalog      *catalog.Catalog
	versions     *catalog.VersionIndex
	sharedConfig *config.SharedConfig
	sampler      *picker.Sampler
	debugf       func(string, ...interface{})

	configPath  string
	catalogPath string // CSV override being watched; empty when the embedded table is used
	watcher     *fsnotify.Watcher

	// Inputs
	minInput   textinput.Model
	maxInput   textinput.Model
	countInput textinput.Model

	// Toggle state
	tiers         map[catalog.Difficulty]bool
	variants      map[int]bool
	versionsOn    bool            // version filtering active
	versionSet    map[string]bool // enabled versions when filtering is active
	tierCursor    int
	variantCursor int
	versionCursor int

	// Focus
	focused int

	// Derived state, recomputed on every interaction
	pool     []catalog.Entry
	inputErr string // level validation message (integer required below 9)

	// Pick result
	results []catalog.Entry
	errMsg  string // empty pool / strict count message

	// UI state
	width    int
	height   int
	quitting bool
	viewport viewport.Model
}

// Key bindings
type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Pick   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "step level up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "step level down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "previous toggle"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next toggle"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle"),
	),
	Pick: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "pick"),
	),
	// esc rather than q: the level and count fields accept free text
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	labelStyle = lipgloss.NewStyle().
			Padding(0, 1)

	focusedLabelStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("240")).
				Foreground(lipgloss.Color("15")).
				Bold(true).
				Padding(0, 1)

	toggleOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	toggleOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	resultHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("10"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	difficultyStyles = map[catalog.Difficulty]lipgloss.Style{
		catalog.Basic:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		catalog.Advanced: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		catalog.Extreme:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
)

// Options contains configuration for running the TUI.
type Options struct {
	ConfigPath  string
	CatalogPath string // CSV override to watch for live reload; empty = embedded table
}

// Run starts the TUI with injected dependencies.
func Run(opts Options, cat *catalog.Catalog, versions *catalog.VersionIndex, sharedConfig *config.SharedConfig, sampler *picker.Sampler, debugf func(string, ...interface{})) error {
	m := initModel(opts, cat, versions, sharedConfig, sampler, debugf)

	if opts.CatalogPath != "" {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}

		if err := watcher.Add(opts.CatalogPath); err != nil {
			watcher.Close()

			return fmt.Errorf("failed to watch catalog file: %w", err)
		}

		m.watcher = watcher
		defer watcher.Close()
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// initModel creates the initial model from the saved config.
func initModel(opts Options, cat *catalog.Catalog, versions *catalog.VersionIndex, sharedConfig *config.SharedConfig, sampler *picker.Sampler, debugf func(string, ...interface{})) model {
	cfg := sharedConfig.Get()

	minInput := textinput.New()
	minInput.SetValue(cfg.MinLevel)
	minInput.CharLimit = 5
	minInput.Width = levelInputWidth
	minInput.Focus()

	maxInput := textinput.New()
	maxInput.SetValue(cfg.MaxLevel)
	maxInput.CharLimit = 5
	maxInput.Width = levelInputWidth

	countInput := textinput.New()
	countInput.SetValue(fmt.Sprintf("%d", cfg.Count))
	countInput.CharLimit = 3
	countInput.Width = countInputWidth

	versionSet := versionSetFromConfig(cfg.Versions)
	if versions.Len() > 0 && len(versionSet) == 0 && !cfg.VersionFilter {
		// First session with an index: start with every version enabled.
		// A deliberately emptied set (VersionFilter saved true) stays empty.
		for _, v := range catalog.GameVersions {
			versionSet[v] = true
		}
	}

	m := model{
		catalog:      cat,
		versions:     versions,
		sharedConfig: sharedConfig,
		sampler:      sampler,
		debugf:       debugf,

		configPath:  opts.ConfigPath,
		catalogPath: opts.CatalogPath,

		minInput:   minInput,
		maxInput:   maxInput,
		countInput: countInput,

		tiers:      tierSetFromConfig(cfg.Difficulties),
		variants:   variantSetFromConfig(cfg.Variants),
		versionsOn: versions.Len() > 0,
		versionSet: versionSet,

		focused:  focusMin,
		viewport: viewport.New(0, 0), // Width and height set on first WindowSizeMsg
	}

	m.recomputePool()

	return m
}

// Init initializes the model.
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, tea.EnterAltScreen}
	if m.watcher != nil {
		cmds = append(cmds, waitForCatalogChange(m.watcher, m.debugf))
	}

	return tea.Batch(cmds...)
}

// tierSetFromConfig converts config tier names to the toggle set. An
// empty or unrecognized list falls back to all tiers: the set must
// never be empty.
func tierSetFromConfig(names []string) map[catalog.Difficulty]bool {
	set := make(map[catalog.Difficulty]bool)

	for _, name := range names {
		if d, err := catalog.ParseDifficulty(name); err == nil {
			set[d] = true
		}
	}

	if len(set) == 0 {
		set[catalog.Basic] = true
		set[catalog.Advanced] = true
		set[catalog.Extreme] = true
	}

	return set
}

// variantSetFromConfig converts config variants to the toggle set,
// falling back to both variants when empty.
func variantSetFromConfig(variants []int) map[int]bool {
	set := make(map[int]bool)

	for _, v := range variants {
		if v == 1 || v == 2 {
			set[v] = true
		}
	}

	if len(set) == 0 {
		set[1] = true
		set[2] = true
	}

	return set
}

// versionSetFromConfig converts enabled version names to the toggle
// set. Unlike tiers and variants this set may legally be empty, which
// simply matches nothing.
func versionSetFromConfig(names []string) map[string]bool {
	set := make(map[string]bool)

	known := make(map[string]bool, len(catalog.GameVersions))
	for _, v := range catalog.GameVersions {
		known[v] = true
	}

	for _, name := range names {
		if known[name] {
			set[name] = true
		}
	}

	return set
}

// truncate shortens a string to maxLen runes, adding "..." if
// truncated. Counts runes, not bytes: titles are frequently Japanese.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(r[:maxLen])
	}

	return string(r[:maxLen-3]) + "..."
}
