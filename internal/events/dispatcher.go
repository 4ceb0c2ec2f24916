// Package events provides the seam for best-effort side effects. A primary
// write that succeeds may dispatch an event; every subscribed hook runs after
// the write and has its error logged and swallowed. There are no retries and
// hook failure never affects the primary operation's result.
package events

import (
	"skillsync-backend/internal/logger"
)

// Event types dispatched after successful writes
const (
	ProjectCreated  = "projects.created"
	ProjectsChanged = "projects.changed"
	MembersChanged  = "members.changed"
)

// Event carries what changed, for hooks that rebroadcast or log
type Event struct {
	Type      string
	ProjectID string
	UserID    string
}

// Hook is a named post-commit side effect
type Hook struct {
	Name string
	Run  func(Event) error
}

// Dispatcher fans events out to registered hooks synchronously, in
// registration order
type Dispatcher struct {
	hooks []Hook
	log   *logger.Logger
}

// NewDispatcher creates a dispatcher with no hooks registered
func NewDispatcher() *Dispatcher {
	return &Dispatcher{log: logger.New()}
}

// Register adds a hook. Not safe for concurrent use; register everything
// during startup wiring.
func (d *Dispatcher) Register(name string, run func(Event) error) {
	d.hooks = append(d.hooks, Hook{Name: name, Run: run})
}

// Dispatch runs every hook for the event. Failures are logged with the hook
// name and otherwise ignored.
func (d *Dispatcher) Dispatch(event Event) {
	for _, hook := range d.hooks {
		if err := hook.Run(event); err != nil {
			d.log.WithFields(map[string]interface{}{
				"hook":    hook.Name,
				"event":   event.Type,
				"project": event.ProjectID,
			}).WithError(err).Warn("post-commit hook failed")
		}
	}
}

// Notifier receives change events for live UI refresh. The default
// implementation only logs; a real-time channel can be plugged in without
// touching the services.
type Notifier interface {
	Notify(event Event) error
}

// LogNotifier logs change events at debug level
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier creates a notifier that only logs
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{log: logger.New()}
}

// Notify implements Notifier
func (n *LogNotifier) Notify(event Event) error {
	n.log.WithFields(map[string]interface{}{
		"event":   event.Type,
		"project": event.ProjectID,
		"user":    event.UserID,
	}).Debug("change notification")
	return nil
}
