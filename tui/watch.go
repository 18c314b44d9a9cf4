// ABOUTME: File watching commands for live catalog reload
// ABOUTME: Bridges fsnotify events into Bubble Tea messages

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"chartpick/catalog"
)

// catalogChangedMsg signals that the watched CSV file was written to
type catalogChangedMsg struct{}

// catalogReloadedMsg carries the result of a background catalog reload
type catalogReloadedMsg struct {
	cat *catalog.Catalog
	err error
}

// waitForCatalogChange returns a command that waits for file system events
func waitForCatalogChange(watcher *fsnotify.Watcher, debugf func(string, ...interface{})) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				// Only react to write events
				if event.Op&fsnotify.Write == fsnotify.Write {
					// Debounce: wait a bit for atomic writes to complete
					time.Sleep(100 * time.Millisecond)

					return catalogChangedMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				// Log error but continue watching
				debugf("[WATCHER] Error: %v", err)
			}
		}
	}
}

// reloadCatalog loads the catalog CSV in the background
func reloadCatalog(path string) tea.Cmd {
	return func() tea.Msg {
		cat, err := catalog.LoadCSV(path)
		if err != nil {
			return catalogReloadedMsg{err: err}
		}

		return catalogReloadedMsg{cat: cat}
	}
}
