package forgetful

import (
	"context"
	"log/slog"
)

// Listener receives observer events. Implementations must be safe for
// concurrent use when the observer is shared between goroutines.
//
// Events are delivered synchronously from Notice and Release while the
// observer's lock is held, so each observer's events arrive in the order its
// registry changed. On must not block and must not call back into the
// observer that emitted the event. Observations released by the runtime after
// being dropped emit no event, so On is only ever called from goroutines that
// call Notice or Release.
type Listener interface {
	On(eventData EventData)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(EventData)

func (f ListenerFunc) On(eventData EventData) {
	f(eventData)
}

// Event represents an observer event type.
type Event int

const (
	// EventNotice is emitted when Notice registers an item.
	EventNotice Event = iota
	// EventRepeat is emitted when Notice finds the item already observed.
	EventRepeat
	// EventRelease is emitted when an Observation is released.
	EventRelease
)

func (e Event) String() string {
	switch e {
	case EventNotice:
		return "notice"
	case EventRepeat:
		return "repeat"
	case EventRelease:
		return "release"
	default:
		return "unknown"
	}
}

// EventData carries the details of an observer event.
type EventData struct {
	Event Event
	Item  any
}

// SlogListener writes events to a slog.Logger. Repeats are logged at warn
// level, everything else at debug.
type SlogListener struct {
	logger *slog.Logger
}

// NewSlogListener creates a SlogListener that writes to logger, or to
// slog.Default if logger is nil.
func NewSlogListener(logger *slog.Logger) *SlogListener {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogListener{logger: logger}
}

func (l *SlogListener) On(eventData EventData) {
	level := slog.LevelDebug
	if eventData.Event == EventRepeat {
		level = slog.LevelWarn
	}
	l.logger.LogAttrs(context.Background(), level, "forgetful."+eventData.Event.String(),
		slog.Any("item", eventData.Item))
}

// MultiListener fans out events to multiple listeners.
type MultiListener struct {
	listeners []Listener
}

// NewMultiListener creates a MultiListener that forwards events to all
// non-nil listeners.
func NewMultiListener(listeners ...Listener) *MultiListener {
	filtered := make([]Listener, 0, len(listeners))
	for _, l := range listeners {
		if l != nil {
			filtered = append(filtered, l)
		}
	}
	return &MultiListener{listeners: filtered}
}

func (m *MultiListener) On(eventData EventData) {
	for _, l := range m.listeners {
		l.On(eventData)
	}
}
