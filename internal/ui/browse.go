// Package ui implements the interactive terminal browser over scan
// results. It is a consumer of the core: it reads bundles from a scan,
// drives the rename engine, and rescans after every mutation rather than
// patching its view in place.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sprintgm/sprintgm/internal/assets"
	"github.com/sprintgm/sprintgm/internal/renamer"
	"github.com/sprintgm/sprintgm/internal/scanner"
)

// BrowseModel is the interactive game browser
type BrowseModel struct {
	root    string
	scanner *scanner.Scanner
	renamer *renamer.Renamer

	result   *scanner.Result
	cursor   int
	offset   int
	pageSize int

	renaming bool
	input    textinput.Model
	status   string
	errMsg   string
}

// rescanMsg carries a fresh scan after a mutation
type rescanMsg struct {
	result *scanner.Result
}

// NewBrowseModel creates the browser for a scanned root
func NewBrowseModel(root string, s *scanner.Scanner, result *scanner.Result) *BrowseModel {
	input := textinput.New()
	input.Placeholder = "new basename"
	input.CharLimit = 120

	return &BrowseModel{
		root:     root,
		scanner:  s,
		renamer:  renamer.New(s.Classifier()),
		result:   result,
		pageSize: 20,
		input:    input,
	}
}

// Init initializes the browser
func (m *BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rescanMsg:
		m.result = msg.result
		if m.cursor >= len(m.result.GameKeys) {
			m.cursor = len(m.result.GameKeys) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		if m.renaming {
			return m.updateRenamePrompt(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset--
				}
			}
		case "down", "j":
			if m.cursor < len(m.result.GameKeys)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.pageSize {
					m.offset++
				}
			}
		case "r":
			if game := m.currentGame(); game != nil {
				m.renaming = true
				m.errMsg = ""
				m.status = ""
				m.input.SetValue(game.Basename)
				m.input.Focus()
				return m, textinput.Blink
			}
		case "s":
			return m, m.rescan()
		}
	}

	return m, nil
}

// updateRenamePrompt handles keys while the rename input is open
func (m *BrowseModel) updateRenamePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.renaming = false
		m.input.Blur()
		return m, nil
	case "enter":
		m.renaming = false
		m.input.Blur()
		return m, m.applyRename(strings.TrimSpace(m.input.Value()))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyRename plans and executes a rename of the current game, then
// triggers a rescan so the view reflects the real tree.
func (m *BrowseModel) applyRename(newBase string) tea.Cmd {
	game := m.currentGame()
	if game == nil || newBase == "" || newBase == game.Basename {
		return nil
	}

	if err := renamer.ValidateBasename(newBase); err != nil {
		m.errMsg = err.Error()
		return nil
	}

	moves, err := m.renamer.PlanRename(game.Folder, game.Basename, newBase)
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	if err := renamer.Apply(moves); err != nil {
		// Rename failures are always surfaced; a silent one would
		// leave assets orphaned under temporary names.
		var rerr *renamer.Error
		if errors.As(err, &rerr) {
			m.errMsg = rerr.UserMessage()
		} else {
			m.errMsg = err.Error()
		}
		return nil
	}

	m.status = fmt.Sprintf("Renamed %q to %q (%d files)", game.Basename, newBase, len(moves))
	return m.rescan()
}

// rescan rebuilds the scan result from the filesystem
func (m *BrowseModel) rescan() tea.Cmd {
	root := m.root
	s := m.scanner
	return func() tea.Msg {
		return rescanMsg{result: s.Scan(root)}
	}
}

func (m *BrowseModel) currentGame() *assets.Bundle {
	if m.cursor < 0 || m.cursor >= len(m.result.GameKeys) {
		return nil
	}
	return m.result.Games[m.result.GameKeys[m.cursor]]
}

// View renders the browser
func (m *BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Sprint Game Manager"))
	b.WriteString("\n")
	b.WriteString(folderStyle.Render(m.root))
	b.WriteString("\n\n")

	if len(m.result.GameKeys) == 0 {
		b.WriteString(missingKindStyle.Render("no games found"))
		b.WriteString("\n")
	}

	end := m.offset + m.pageSize
	if end > len(m.result.GameKeys) {
		end = len(m.result.GameKeys)
	}

	for i := m.offset; i < end; i++ {
		key := m.result.GameKeys[i]
		cursor := "  "
		line := key
		if i == m.cursor {
			cursor = selectedStyle.Render("> ")
			line = selectedStyle.Render(key)
		}
		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}

	if game := m.currentGame(); game != nil {
		b.WriteString("\n")
		b.WriteString(m.viewBundle(game))
	}

	if m.renaming {
		b.WriteString("\nRename to: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter apply | esc cancel"))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(kindStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down navigate | r rename | s rescan | q quit"))
	return b.String()
}

// viewBundle renders the detail pane for one bundle
func (m *BrowseModel) viewBundle(game *assets.Bundle) string {
	var b strings.Builder

	b.WriteString(filePathStyle.Render(game.Folder))
	b.WriteString("\n")
	for _, k := range assets.Kinds {
		if path := game.Path(k); path != "" {
			b.WriteString(kindStyle.Render(fmt.Sprintf("  %-12s", k.String())))
			b.WriteString(baseOf(path))
			b.WriteString("\n")
		}
	}
	for _, other := range game.Other {
		b.WriteString(missingKindStyle.Render("  other       "))
		b.WriteString(baseOf(other))
		b.WriteString("\n")
	}
	return b.String()
}

func baseOf(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
