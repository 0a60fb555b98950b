package adminclient

import "github.com/rs/zerolog"

// Notifier is the injected toast surface. Every failure path in the
// pipeline ends in a Notifier call, a view error state, or a field
// message; never a silent drop.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes toasts to the structured log; useful as a default
// and in headless contexts.
type LogNotifier struct {
	Log *zerolog.Logger
}

func (n LogNotifier) Success(msg string) {
	n.Log.Info().Str("toast", "success").Msg(msg)
}

func (n LogNotifier) Error(msg string) {
	n.Log.Warn().Str("toast", "error").Msg(msg)
}

// Navigator performs the post-submit route change.
type Navigator interface {
	NavigateTo(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) NavigateTo(path string) { f(path) }
