package view

import (
	"fmt"
	"sync"
)

// State names the active top-level screen.
type State string

const (
	StateFeed          State = "FEED"
	StateExplore       State = "EXPLORE"
	StateCreate        State = "CREATE"
	StateProfile       State = "PROFILE"
	StateNotifications State = "NOTIFICATIONS"
)

// ParseState validates a navigation target from the rendering surface.
func ParseState(s string) (State, error) {
	switch State(s) {
	case StateFeed, StateExplore, StateCreate, StateProfile, StateNotifications:
		return State(s), nil
	}
	return "", fmt.Errorf("unknown view state %q", s)
}

// Controller is the navigation state machine. Any state reaches any other
// state directly; every transition emits the new state's title label through
// the listener.
type Controller struct {
	mu           sync.Mutex
	state        State
	defaultTitle string
	onChange     func(state State, title string)
}

// NewController starts at FEED. onChange may be nil.
func NewController(defaultTitle string, onChange func(State, string)) *Controller {
	return &Controller{
		state:        StateFeed,
		defaultTitle: defaultTitle,
		onChange:     onChange,
	}
}

// Navigate unconditionally activates target.
func (c *Controller) Navigate(target State) {
	c.mu.Lock()
	c.state = target
	title := c.titleLocked()
	onChange := c.onChange
	c.mu.Unlock()

	if onChange != nil {
		onChange(target, title)
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Title returns the label for the active state. Explore and notifications
// reuse the default application title.
func (c *Controller) Title() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.titleLocked()
}

func (c *Controller) titleLocked() string {
	switch c.state {
	case StateCreate:
		return "Novo Post"
	case StateProfile:
		return "Meu Perfil"
	default:
		return c.defaultTitle
	}
}
