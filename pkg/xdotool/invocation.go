package xdotool

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/anmitsu/go-shlex"
)

var safeWord = regexp.MustCompile(`^[A-Za-z0-9_./:@%+=,-]+$`)

// Quote returns s as a single POSIX shell word. Words made only of
// characters that need no escaping are returned unchanged.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if safeWord.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Invocation is one fully rendered call of an external tool.
type Invocation struct {
	Tool    string // executable name or path
	Command string // rendered subcommand and flags
	Args    string // positional arguments, appended verbatim
}

// Line joins tool, command and arguments with single spaces.
// Empty parts are skipped so no double or trailing spaces appear.
func (i Invocation) Line() string {
	parts := make([]string, 0, 3)
	if i.Tool != "" {
		parts = append(parts, Quote(i.Tool))
	}
	if i.Command != "" {
		parts = append(parts, i.Command)
	}
	if i.Args != "" {
		parts = append(parts, i.Args)
	}
	return strings.Join(parts, " ")
}

// Argv splits the line into an argument vector using POSIX word rules.
func (i Invocation) Argv() ([]string, error) {
	argv, err := shlex.Split(i.Line(), true)
	if err != nil {
		return nil, fmt.Errorf("failed to split %q: %w", i.Line(), err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty invocation")
	}
	return argv, nil
}

// Subcommand returns the first token of the rendered command.
func (i Invocation) Subcommand() string {
	if fields := strings.Fields(i.Command); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// Result is the captured outcome of one child process.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int // -1 when the child was terminated by a signal
}

// Success reports whether the tool exited with status zero.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Text returns stdout with surrounding whitespace removed.
func (r *Result) Text() string {
	return strings.TrimSpace(string(r.Stdout))
}

// SpawnError reports that the child process could not be started at all.
type SpawnError struct {
	Line string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to execute '%s': %v", e.Line, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
