package handlers

import (
	"github.com/gdamore/tcell/v2"

	"ssv/internal/log"
)

// InputHandler routes global key presses to the viewer's commands.
type InputHandler struct {
	onQuit    func()
	onEscape  func()
	onCommand func(rune) bool
}

// NewInputHandler creates an input handler with no callbacks.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// SetCallbacks sets the callback functions. onCommand reports whether the key
// was bound to a command.
func (ih *InputHandler) SetCallbacks(onQuit, onEscape func(), onCommand func(rune) bool) {
	ih.onQuit = onQuit
	ih.onEscape = onEscape
	ih.onCommand = onCommand
}

// HandleKeyEvent is installed as the application's input capture. Handled
// keys return nil so focused primitives never see them.
func (ih *InputHandler) HandleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyCtrlC:
		ih.quit()
		return nil
	case tcell.KeyEscape:
		if ih.onEscape != nil {
			ih.onEscape()
		}
		return nil
	case tcell.KeyRune:
		r := event.Rune()
		if r == 'q' || r == 'Q' {
			ih.quit()
			return nil
		}
		if ih.onCommand != nil && ih.onCommand(lower(r)) {
			log.Debug("Key command", "key", string(r))
			return nil
		}
	}
	return event
}

func (ih *InputHandler) quit() {
	if ih.onQuit != nil {
		ih.onQuit()
	}
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}
