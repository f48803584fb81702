package terminal

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"physics-arena/internal/commands"
	"physics-arena/internal/logger"
)

func TestSubmit(t *testing.T) {
	log := logger.New("")
	reg := commands.NewRegistry()
	calls := 0
	reg.Register("ping", "", nil, func([]string) error {
		calls++
		return nil
	})
	reg.Register("fail", "", nil, func([]string) error { return errors.New("nope") })
	term := New(log, reg)

	tests := []struct {
		line  string
		calls int
		last  string
	}{
		{"cmd ping", 1, "> cmd ping"},
		{"cmd fail", 1, "error: nope"},
		{"cmd missing", 1, "unknown command"},
		{"hello", 1, `commands start with "cmd "`},
		{"help", 1, "cmd ping"},
	}
	for _, tt := range tests {
		term.Submit(tt.line)
		if calls != tt.calls {
			t.Errorf("%q: calls = %d, want %d", tt.line, calls, tt.calls)
		}
		tail := log.Tail(1)
		if len(tail) != 1 || !strings.Contains(tail[0], tt.last) {
			t.Errorf("%q: last log line = %v, want it to contain %q", tt.line, tail, tt.last)
		}
	}

	before := log.Tail(1)[0]
	term.Submit("")
	if got := log.Tail(1)[0]; got != before {
		t.Errorf("empty line was logged: %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"abcdefghijkl", 10, "abcdefg..."},
		// "é" is two bytes; a cut at byte 7 would split the second one.
		{"abcdéééé", 10, "abcdé..."},
		{"ééééé", 8, "éé..."},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.n)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) = %q is not valid UTF-8", tt.in, tt.n, got)
		}
	}
}
