package timer

import (
	"log/slog"
	"strings"
	"time"

	"github.com/all-dot-files/timer/internal/storage"
	"github.com/all-dot-files/timer/pkg/errors"
)

// Service starts and stops timers against a LineStore. It holds no state of
// its own; every call re-reads the store.
type Service struct {
	store storage.LineStore
	now   func() time.Time
	log   *slog.Logger
}

// NewService creates a Service over store. A nil now uses time.Now and a nil
// log uses slog.Default().
func NewService(store storage.LineStore, now func() time.Time, log *slog.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, now: now, log: log}
}

// Current returns the running timer, or nil
func (s *Service) Current() (*CurrentTimer, error) {
	return GetCurrent(s.store)
}

// Elapsed returns the signed time since t started
func (s *Service) Elapsed(t *CurrentTimer) time.Duration {
	return s.now().Sub(t.Start)
}

// Start records a new timer named name. When a timer is already running it is
// returned with started=false and the store is left untouched.
func (s *Service) Start(name string) (t CurrentTimer, started bool, err error) {
	if strings.TrimSpace(name) == "" {
		return CurrentTimer{}, false, errors.New(errors.ErrInvalidInput, "timer.start", "timer name must not be empty")
	}

	running, err := s.Current()
	if err != nil {
		return CurrentTimer{}, false, err
	}
	if running != nil {
		s.log.Debug("start rejected, timer running", "running", running.Name, "requested", name)
		return *running, false, nil
	}

	t = CurrentTimer{Name: name, Start: s.now().UTC().Truncate(time.Second)}
	if err := s.store.Append(FormatCurrentLine(t.Name, t.Start)); err != nil {
		return CurrentTimer{}, false, err
	}

	s.log.Debug("timer started", "name", t.Name, "start", t.Start)
	return t, true, nil
}

// Stop ends the running timer, replacing its line with a summary line. It
// returns stopped=false when no timer is running.
func (s *Service) Stop() (sum Summary, stopped bool, err error) {
	running, err := s.Current()
	if err != nil {
		return Summary{}, false, err
	}
	if running == nil {
		s.log.Debug("stop skipped, no timer running")
		return Summary{}, false, nil
	}

	sum = Summary{Name: running.Name, Elapsed: s.Elapsed(running)}

	if err := s.store.DeleteLastLine(); err != nil {
		return Summary{}, false, err
	}
	if err := s.store.Append(sum.Line()); err != nil {
		return Summary{}, false, err
	}

	s.log.Debug("timer stopped", "name", sum.Name, "elapsed", sum.Elapsed)
	return sum, true, nil
}
