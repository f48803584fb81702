package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the default path of the arena log, relative to the working directory.
const LogFilePath = "logs/arena.txt"

// Logger stores timestamped lines in memory and, when a path is set, appends them to a file on disk.
// It satisfies physics.Logger.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	out   io.Writer
	now   func() time.Time
}

// New returns a Logger writing to path. An empty path keeps lines in memory only.
// The parent directory is created when needed.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0), now: time.Now}
}

// Log appends a line prefixed with [timestamp] and mirrors it to the log file.
// File errors are ignored; the in-memory copy is always kept.
func (l *Logger) Log(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line
	l.lines = append(l.lines, stamped)
	if l.out != nil {
		_, _ = io.WriteString(l.out, line+"\n")
	}
	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// SetOutput mirrors every following line, without timestamp, to w. nil stops mirroring.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	l.out = w
	l.mu.Unlock()
}

// Logf formats and logs a line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Tail returns a copy of the last n lines (fewer if not that many were logged).
func (l *Logger) Tail(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n <= 0 {
		return nil
	}
	start := max(len(l.lines)-n, 0)
	out := make([]string, len(l.lines)-start)
	copy(out, l.lines[start:])
	return out
}
