package storage

// LineStore is the line-oriented state file. Implementations must not cache:
// every call observes the file as it is on disk.
type LineStore interface {
	// Path returns the location of the state file
	Path() string
	// Append writes line verbatim, creating the file if needed
	Append(line string) error
	// ReadLastLine returns the final line without its terminator, or "" for
	// an empty or absent file
	ReadLastLine() (string, error)
	// DeleteLastLine removes exactly the final line
	DeleteLastLine() error
}
