package utils

import (
	"sync"

	"github.com/quantmind-br/entrify/internal/domain"
)

// LogSink writes diagnostics to a Logger
type LogSink struct {
	logger *Logger
}

// NewLogSink creates a sink logging under the "entrify" component
func NewLogSink(logger *Logger) *LogSink {
	return &LogSink{logger: logger.WithComponent("entrify")}
}

// Notice logs discovery, creation and deletion at info level
func (s *LogSink) Notice(event domain.Event, path string) {
	s.logger.Info().
		Str("event", string(event)).
		Str("path", path).
		Msg(event.Message())
}

// Warn logs skips and per-manifest failures at warn level
func (s *LogSink) Warn(event domain.Event, path string, err error) {
	e := s.logger.Warn().
		Str("reason", string(event)).
		Str("path", path)
	if err != nil {
		e = e.Err(err)
	}
	e.Msg(event.Message())
}

// NopSink drops every diagnostic
type NopSink struct{}

func (NopSink) Notice(domain.Event, string) {}
func (NopSink) Warn(domain.Event, string, error) {}

// CountingSink tallies events before forwarding them to the wrapped sink
type CountingSink struct {
	next domain.Sink

	mu     sync.Mutex
	counts map[domain.Event]int
	errs   []error
}

// NewCountingSink wraps next; a nil next counts without forwarding
func NewCountingSink(next domain.Sink) *CountingSink {
	if next == nil {
		next = NopSink{}
	}
	return &CountingSink{next: next, counts: map[domain.Event]int{}}
}

func (s *CountingSink) Notice(event domain.Event, path string) {
	s.mu.Lock()
	s.counts[event]++
	s.mu.Unlock()
	s.next.Notice(event, path)
}

func (s *CountingSink) Warn(event domain.Event, path string, err error) {
	s.mu.Lock()
	s.counts[event]++
	if err != nil {
		s.errs = append(s.errs, err)
	}
	s.mu.Unlock()
	s.next.Warn(event, path, err)
}

// Count returns how many times event was seen
func (s *CountingSink) Count(event domain.Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[event]
}

// Skipped returns the number of skip events of any reason
func (s *CountingSink) Skipped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for e, c := range s.counts {
		if e.IsSkip() {
			n += c
		}
	}
	return n
}

// Errors returns the per-manifest failures seen so far
func (s *CountingSink) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]error(nil), s.errs...)
}
