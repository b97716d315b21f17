package timer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/all-dot-files/timer/internal/storage/text"
	"github.com/all-dot-files/timer/pkg/errors"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var t0 = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

func TestStartWhenIdle(t *testing.T) {
	store := &memStore{lines: []string{"old:  5 seconds"}}
	svc := NewService(store, fixedClock(t0.Add(250*time.Millisecond)), nil)

	got, started, err := svc.Start("coding")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !started {
		t.Fatal("expected timer to start")
	}
	if got.Name != "coding" || !got.Start.Equal(t0) {
		t.Errorf("unexpected timer %+v", got)
	}
	if store.appends != 1 || store.deletes != 0 {
		t.Errorf("expected exactly one append, got %d appends %d deletes", store.appends, store.deletes)
	}
	if last := store.lines[len(store.lines)-1]; last != "Current: coding Sat, 17 Oct 2026 09:00:00 +0000" {
		t.Errorf("unexpected current line %q", last)
	}
}

func TestStartRejectsEmptyName(t *testing.T) {
	for _, name := range []string{"", "   "} {
		store := &memStore{}
		svc := NewService(store, fixedClock(t0), nil)

		_, started, err := svc.Start(name)
		if !errors.IsCode(err, errors.ErrInvalidInput) {
			t.Errorf("Start(%q) error = %v, want INVALID_INPUT", name, err)
		}
		if started || store.appends != 0 {
			t.Errorf("Start(%q) must not write, appends=%d", name, store.appends)
		}
	}
}

func TestStartWhenRunning(t *testing.T) {
	store := &memStore{lines: []string{"Current: coding Sat, 17 Oct 2026 09:00:00 +0000"}}
	svc := NewService(store, fixedClock(t0.Add(time.Hour)), nil)

	got, started, err := svc.Start("meeting")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if started {
		t.Fatal("start must be rejected while a timer is running")
	}
	if got.Name != "coding" {
		t.Errorf("expected running timer name coding, got %q", got.Name)
	}
	if store.appends != 0 || store.deletes != 0 {
		t.Errorf("expected no mutations, got %d appends %d deletes", store.appends, store.deletes)
	}
}

func TestStopWhenRunning(t *testing.T) {
	store := &memStore{lines: []string{
		"a:  1 seconds",
		"Current: coding Sat, 17 Oct 2026 09:00:00 +0000",
	}}
	svc := NewService(store, fixedClock(t0.Add(90*time.Second)), nil)

	sum, stopped, err := svc.Stop()
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if !stopped {
		t.Fatal("expected timer to stop")
	}
	if sum.Name != "coding" || sum.Elapsed != 90*time.Second {
		t.Errorf("unexpected summary %+v", sum)
	}
	if len(store.lines) != 2 {
		t.Fatalf("line count changed: %v", store.lines)
	}
	if store.lines[0] != "a:  1 seconds" || store.lines[1] != "coding:  1 minutes 30 seconds" {
		t.Errorf("unexpected lines %q", store.lines)
	}
	if store.deletes != 1 || store.appends != 1 {
		t.Errorf("expected one delete and one append, got %d deletes %d appends", store.deletes, store.appends)
	}
}

func TestStopWithClockSkew(t *testing.T) {
	store := &memStore{lines: []string{"Current: x Sat, 17 Oct 2026 09:00:00 +0000"}}
	svc := NewService(store, fixedClock(t0.Add(-30*time.Second)), nil)

	sum, _, err := svc.Stop()
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if sum.Elapsed != -30*time.Second {
		t.Errorf("expected negative elapsed, got %v", sum.Elapsed)
	}
	if store.lines[0] != "x:  -30 seconds" {
		t.Errorf("unexpected summary line %q", store.lines[0])
	}
}

func TestStopWhenIdle(t *testing.T) {
	store := &memStore{lines: []string{"a:  1 seconds"}}
	svc := NewService(store, nil, nil)

	_, stopped, err := svc.Stop()
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if stopped {
		t.Fatal("expected no timer to stop")
	}
	if store.appends != 0 || store.deletes != 0 {
		t.Errorf("expected no mutations, got %d appends %d deletes", store.appends, store.deletes)
	}
}

func TestCorruptStateIsFatal(t *testing.T) {
	store := &memStore{lines: []string{"Current: coding not-a-date"}}
	svc := NewService(store, nil, nil)

	if _, _, err := svc.Start("x"); !errors.IsCode(err, errors.ErrCorruptState) {
		t.Errorf("Start error = %v, want CORRUPT_STATE", err)
	}
	if _, _, err := svc.Stop(); !errors.IsCode(err, errors.ErrCorruptState) {
		t.Errorf("Stop error = %v, want CORRUPT_STATE", err)
	}
	if store.appends != 0 || store.deletes != 0 {
		t.Error("corrupt state must not be mutated")
	}
}

func TestStartStopOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), text.DefaultFileName)
	if err := os.WriteFile(path, []byte("earlier:  2 hours 0 minutes 0 seconds\n"), 0644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	store := text.NewStore(path, nil)

	now := t0
	svc := NewService(store, func() time.Time { return now }, nil)

	if _, started, err := svc.Start("coding"); err != nil || !started {
		t.Fatalf("Start: started=%v err=%v", started, err)
	}

	current, err := svc.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if current == nil || current.Name != "coding" || !current.Start.Equal(t0) {
		t.Fatalf("round trip through disk failed: %+v", current)
	}

	now = t0.Add(week + 3*day)
	if _, stopped, err := svc.Stop(); err != nil || !stopped {
		t.Fatalf("Stop: stopped=%v err=%v", stopped, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "earlier:  2 hours 0 minutes 0 seconds\ncoding:  1 weeks 3 days 0 hours 0 minutes 0 seconds\n"
	if string(data) != want {
		t.Errorf("state file = %q, want %q", string(data), want)
	}
	if strings.Count(string(data), "\n") != 2 {
		t.Error("expected two lines after stop")
	}
}
