// Package router keeps the stack of screens the app navigates through.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzer/internal/screen"
)

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// ReplaceScreenMsg requests the router to swap the top screen for another.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router manages a stack of screens.
//
// Only the top screen receives messages, so the router remembers the last
// window size and replays it to a screen when it comes to the top.
type Router struct {
	stack []screen.Screen
	size  *tea.WindowSizeMsg
}

// New creates a new Router with the given initial screen.
func New(initial screen.Screen) *Router {
	return &Router{
		stack: []screen.Screen{initial},
	}
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return tea.Batch(s.Init(), r.replaySize())
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return r.replaySize()
}

// Replace swaps the top screen for s and calls its Init(). Depth is kept.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		r.stack = append(r.stack, s)
	} else {
		r.stack[len(r.stack)-1] = s
	}
	return tea.Batch(s.Init(), r.replaySize())
}

// replaySize sends the last known window size to the top screen.
func (r *Router) replaySize() tea.Cmd {
	if r.size == nil || len(r.stack) == 0 {
		return nil
	}
	top := len(r.stack) - 1
	updated, cmd := r.stack[top].Update(*r.size)
	r.stack[top] = updated
	return cmd
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update handles navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case tea.WindowSizeMsg:
		r.size = &msg
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
