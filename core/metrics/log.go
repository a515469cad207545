package metrics

import (
	"time"

	"github.com/rs/zerolog"
)

// LogObserver logs resolution outcomes.
// Useful for debugging and development.
type LogObserver struct {
	logger zerolog.Logger
}

// NewLogObserver creates a new log observer.
func NewLogObserver(logger zerolog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

// ObserveResolution logs one resolution outcome.
func (o *LogObserver) ObserveResolution(kind string, elapsed time.Duration) {
	if kind == "" {
		o.logger.Debug().
			Dur("elapsed", elapsed).
			Msg("resolution succeeded")
		return
	}

	o.logger.Debug().
		Str("kind", kind).
		Dur("elapsed", elapsed).
		Msg("resolution failed")
}

// Multi fans one outcome out to several observers.
type Multi []interface {
	ObserveResolution(kind string, elapsed time.Duration)
}

// ObserveResolution forwards the outcome to every observer.
func (m Multi) ObserveResolution(kind string, elapsed time.Duration) {
	for _, o := range m {
		o.ObserveResolution(kind, elapsed)
	}
}
