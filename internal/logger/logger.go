package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file, relative to the working directory.
const DefaultPath = "logs/strokeview.log"

// Level tags a log line.
type Level int

const (
	Info Level = iota
	Error
)

func (l Level) String() string {
	if l == Error {
		return "ERROR"
	}
	return "INFO"
}

// Entry is one stored line.
type Entry struct {
	Time  time.Time
	Level Level
	Text  string
}

// String formats the entry as written to the log file.
func (e Entry) String() string {
	return "[" + e.Time.Format("2006-01-02 15:04:05") + "] " + e.Level.String() + " " + e.Text
}

// Logger keeps recent lines in memory for the on-screen status display and appends every line
// to a file. Safe for use from fetch goroutines.
type Logger struct {
	mu      sync.Mutex
	path    string
	entries []Entry
	max     int
	now     func() time.Time
}

// New returns a Logger writing to path (DefaultPath if empty). The directory is created; when
// that fails the logger still keeps lines in memory. At most max entries are kept (0 = 500).
func New(path string, max int) *Logger {
	if path == "" {
		path = DefaultPath
	}
	if max <= 0 {
		max = 500
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, max: max, now: time.Now}
}

// Log records an info line.
func (l *Logger) Log(line string) {
	l.add(Info, line)
}

// Logf records a formatted info line.
func (l *Logger) Logf(format string, args ...any) {
	l.add(Info, fmt.Sprintf(format, args...))
}

// Errorf records a formatted error line.
func (l *Logger) Errorf(format string, args ...any) {
	l.add(Error, fmt.Sprintf(format, args...))
}

func (l *Logger) add(level Level, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := Entry{Time: l.now(), Level: level, Text: text}
	l.entries = append(l.entries, e)
	if len(l.entries) > l.max {
		l.entries = append(l.entries[:0], l.entries[len(l.entries)-l.max:]...)
	}

	// Appending under the lock keeps the file in the same order as the entries.
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(e.String() + "\n")
	_ = f.Close()
}

// Entries returns a copy of the stored entries, oldest first.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the newest entry and false when nothing was logged yet.
func (l *Logger) Last() (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}
