// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Choice is one selectable entry in the pair picker.
type Choice struct {
	Identifier string
	Label      string
	Lines      int
}

// SelectPair lets the user pick exactly two choices and returns their indexes
// in selection order. A cancelled picker returns nil.
func SelectPair(choices []Choice) ([]int, error) {
	p := tea.NewProgram(pickerModel{items: choices})
	m, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}
	return m.(pickerModel).selected, nil
}

type pickerModel struct {
	items    []Choice
	cursor   int
	selected []int
}

func (m pickerModel) Init() tea.Cmd { return nil }

type pickerKeyMap struct {
	Quit   key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Go     key.Binding
}

var pickerKeys = pickerKeyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
	Toggle: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),
	Go:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, pickerKeys.Quit):
		m.selected = nil
		return m, tea.Quit
	case key.Matches(km, pickerKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, pickerKeys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(km, pickerKeys.Toggle):
		if i := m.position(m.cursor); i >= 0 {
			m.selected = append(m.selected[:i:i], m.selected[i+1:]...)
		} else if len(m.selected) < 2 {
			m.selected = append(m.selected, m.cursor)
		}
	case key.Matches(km, pickerKeys.Go):
		if len(m.selected) == 2 {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	var sb strings.Builder
	sb.WriteString("Select two variants:\n\n")
	for i, c := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		mark := " "
		if m.position(i) >= 0 {
			mark = "x"
		}
		fmt.Fprintf(&sb, "%s [%s] %s/%s %5d lines\n", cursor, mark, c.Identifier, c.Label, c.Lines)
	}
	sb.WriteString("\nSPACE: toggle, ENTER: go, Q/ESCAPE: quit\n")
	return sb.String()
}

// position returns where item idx sits in the selection, or -1.
func (m pickerModel) position(idx int) int {
	for i, s := range m.selected {
		if s == idx {
			return i
		}
	}
	return -1
}
