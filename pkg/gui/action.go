package gui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

type Action string

const (
	ActionNone      Action = ""
	ActionNext      Action = "Next"
	ActionPrevious  Action = "Previous"
	ActionOrderUp   Action = "Order+"
	ActionOrderDown Action = "Order-"
	ActionCopy      Action = "Copy"
	ActionExport    Action = "Export"
	ActionExit      Action = "Exit"
)

// Keybind ties an action to the keys that trigger it.
type Keybind struct {
	Action Action
	Keys   []tcell.Key
	Runes  []rune
	Label  string
}

var Keybinds = []Keybind{
	{ActionPrevious, []tcell.Key{tcell.KeyLeft}, []rune{'h'}, "←/h"},
	{ActionNext, []tcell.Key{tcell.KeyRight}, []rune{'l'}, "→/l"},
	{ActionOrderUp, []tcell.Key{tcell.KeyUp}, []rune{'k', '+'}, "↑/k"},
	{ActionOrderDown, []tcell.Key{tcell.KeyDown}, []rune{'j', '-'}, "↓/j"},
	{ActionCopy, nil, []rune{'c'}, "c"},
	{ActionExport, nil, []rune{'e'}, "e"},
	{ActionExit, []tcell.Key{tcell.KeyEscape}, []rune{'q'}, "q"},
}

// ActionFor maps a key event to its action.
func ActionFor(ev *tcell.EventKey) Action {
	for _, kb := range Keybinds {
		if ev.Key() == tcell.KeyRune {
			for _, r := range kb.Runes {
				if ev.Rune() == r {
					return kb.Action
				}
			}
			continue
		}

		for _, k := range kb.Keys {
			if ev.Key() == k {
				return kb.Action
			}
		}
	}

	return ActionNone
}

// HelpText lists every keybind, e.g. "←/h Previous  →/l Next".
func HelpText() string {
	parts := make([]string, len(Keybinds))
	for i, kb := range Keybinds {
		parts[i] = kb.Label + " " + string(kb.Action)
	}

	return strings.Join(parts, "  ")
}
