package text

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/all-dot-files/timer/internal/storage"
	"github.com/all-dot-files/timer/pkg/errors"
	"github.com/all-dot-files/timer/pkg/fileio"
)

// DefaultFileName is the state file created in the user's home directory
const DefaultFileName = ".timerconfig"

const filePerm = 0644

// Store implements storage.LineStore on a plain text file
type Store struct {
	path string
	log  *slog.Logger
}

var _ storage.LineStore = (*Store)(nil)

// NewStore creates a store backed by path
func NewStore(path string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{path: path, log: log.With("path", path)}
}

// DefaultPath returns <home>/.timerconfig
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithSuggestion(err, errors.ErrNotFound, "state.path",
			"could not determine home directory", "set $HOME or pass --file")
	}
	return filepath.Join(home, DefaultFileName), nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Append(line string) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return errors.Wrap(err, errors.ErrIO, "state.append", fmt.Sprintf("could not open %s", s.path))
	}

	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return errors.Wrap(err, errors.ErrIO, "state.append", fmt.Sprintf("could not write to %s", s.path))
	}

	if err := f.Close(); err != nil {
		return errors.Wrap(err, errors.ErrIO, "state.append", fmt.Sprintf("could not write to %s", s.path))
	}

	s.log.Debug("appended line", "bytes", len(line))
	return nil
}

func (s *Store) ReadLastLine() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("state file absent")
			return "", nil
		}
		return "", errors.Wrap(err, errors.ErrIO, "state.read", fmt.Sprintf("could not read %s", s.path))
	}

	content := strings.TrimSuffix(string(data), "\n")
	return content[lastLineStart(content):], nil
}

func (s *Store) DeleteLastLine() error {
	info, err := os.Stat(s.path)
	if err != nil {
		return errors.Wrap(err, errors.ErrIO, "state.delete", fmt.Sprintf("could not edit %s", s.path))
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return errors.Wrap(err, errors.ErrIO, "state.delete", fmt.Sprintf("could not read %s", s.path))
	}
	if len(data) == 0 {
		return nil
	}

	kept := truncateLastLine(string(data))
	if err := fileio.WriteFile(s.path, []byte(kept), info.Mode().Perm()); err != nil {
		return errors.Wrap(err, errors.ErrIO, "state.delete", fmt.Sprintf("could not rewrite %s", s.path))
	}

	s.log.Debug("deleted last line", "removed_bytes", len(data)-len(kept))
	return nil
}

// truncateLastLine drops the final line and its terminator, keeping every
// earlier line byte for byte.
func truncateLastLine(content string) string {
	body := strings.TrimSuffix(content, "\n")
	return body[:lastLineStart(body)]
}

// lastLineStart returns the offset at which the final line of s begins.
// s must not end with the line terminator.
func lastLineStart(s string) int {
	return strings.LastIndexByte(s, '\n') + 1
}
