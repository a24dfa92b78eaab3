package nav

import "dashboard/logger"

// Navigator performs the page transition for a selected route.
type Navigator interface {
	Navigate(path string)
}

// Func adapts a function to Navigator.
type Func func(path string)

// Navigate calls f with path. A nil Func does nothing.
func (f Func) Navigate(path string) {
	if f != nil {
		f(path)
	}
}

// Log only reports the destination. It stands in for a router.
type Log struct{}

// Navigate logs the destination at info level.
func (Log) Navigate(path string) {
	logger.Info("going to %q", path)
}

// Chain calls each navigator in order. Nil entries are skipped.
func Chain(navs ...Navigator) Navigator {
	return Func(func(path string) {
		for _, n := range navs {
			if n != nil {
				n.Navigate(path)
			}
		}
	})
}

// Modes selectable from configuration: log only, or log and route.
const (
	ModeLog   = "log"
	ModeRoute = "route"
)
