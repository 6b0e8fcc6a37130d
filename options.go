package forgetful

// Option configures an Observer created by New, NewKeyed or WithObserver.
type Option func(*settings)

type settings struct {
	listener Listener
}

// WithListener attaches a Listener that receives notice, repeat and release
// events for the lifetime of the observer.
func WithListener(l Listener) Option {
	return func(s *settings) {
		s.listener = l
	}
}

func collect(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
