// Package xdotool drives an X11 session through the xdotool and xwd command
// line tools.
//
// Every operation renders a typed Command, appends positional arguments and
// runs the tool once, synchronously, with DISPLAY and XAUTHORITY set for the
// child only. Output is returned uninterpreted.
//
//	srv := xdotool.New(0, os.Getenv("XAUTHORITY"))
//	res := srv.Search("firefox", xdotool.NewOptions(xdotool.SearchName))
//	fmt.Println(res.Text())
package xdotool

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

const (
	DefaultXdotool = "xdotool"
	DefaultXwd     = "xwd"
)

// Observer is called after every completed invocation.
type Observer func(inv Invocation, res *Result, elapsed time.Duration)

// ServerOption configures an XServer at construction.
type ServerOption func(*XServer)

// WithShell runs invocations through "sh -c" instead of executing the
// argument vector directly. Shell metacharacters in arguments are then
// interpreted by the shell.
func WithShell() ServerOption {
	return func(x *XServer) { x.shell = true }
}

// WithXdotoolPath overrides the xdotool executable.
func WithXdotoolPath(path string) ServerOption {
	return func(x *XServer) { x.xdotool = path }
}

// WithXwdPath overrides the xwd executable.
func WithXwdPath(path string) ServerOption {
	return func(x *XServer) { x.xwd = path }
}

// WithObserver registers fn to be called after each invocation.
func WithObserver(fn Observer) ServerOption {
	return func(x *XServer) { x.observers = append(x.observers, fn) }
}

// XServer addresses one X display. It is read-only after New and safe to
// share between goroutines.
type XServer struct {
	display   uint32
	auth      string
	xdotool   string
	xwd       string
	shell     bool
	observers []Observer
}

// New returns an XServer for display :<display> authorized by the
// Xauthority file at auth.
func New(display uint32, auth string, opts ...ServerOption) *XServer {
	x := &XServer{
		display: display,
		auth:    auth,
		xdotool: DefaultXdotool,
		xwd:     DefaultXwd,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

func (x *XServer) Display() uint32 { return x.display }
func (x *XServer) Auth() string    { return x.auth }
func (x *XServer) Shell() bool     { return x.shell }

// Invocation builds the call Run would make for c and args.
func (x *XServer) Invocation(c Command, args string) Invocation {
	return Invocation{Tool: x.xdotool, Command: c.String(), Args: args}
}

// Run executes an xdotool command. Every other method is built on it; use it
// directly only when no convenience method fits.
//
// A tool that runs and exits non-zero is not an error: inspect
// Result.ExitCode. If the process cannot be started at all Run panics with
// a *SpawnError. Use Exec to receive that failure as an error instead.
func (x *XServer) Run(c Command, args string) *Result {
	return x.must(x.Exec(c, args))
}

// Exec is Run returning spawn failures as *SpawnError.
func (x *XServer) Exec(c Command, args string) (*Result, error) {
	return x.launch(x.Invocation(c, args), x.shell)
}

// Screenshot dumps the root window with xwd and returns the raw XWD image
// in Result.Stdout. xwd is always executed directly, never via a shell.
func (x *XServer) Screenshot() *Result {
	return x.must(x.launch(Invocation{Tool: x.xwd, Command: "-root"}, false))
}

func (x *XServer) must(res *Result, err error) *Result {
	if err != nil {
		panic(err)
	}
	return res
}

func (x *XServer) launch(inv Invocation, shell bool) (*Result, error) {
	cmd, err := x.command(inv, shell)
	if err != nil {
		return nil, &SpawnError{Line: inv.Line(), Err: err}
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	elapsed := time.Since(start)

	res := &Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &SpawnError{Line: inv.Line(), Err: err}
		}
		res.ExitCode = exitErr.ExitCode()
	}

	for _, fn := range x.observers {
		fn(inv, res, elapsed)
	}
	return res, nil
}

func (x *XServer) command(inv Invocation, shell bool) (*exec.Cmd, error) {
	var cmd *exec.Cmd
	if shell {
		cmd = exec.Command("sh", "-c", inv.Line())
	} else {
		argv, err := inv.Argv()
		if err != nil {
			return nil, err
		}
		cmd = exec.Command(argv[0], argv[1:]...)
	}
	cmd.Env = x.environ(os.Environ())
	return cmd, nil
}

// environ returns base without DISPLAY and XAUTHORITY, followed by this
// server's values for both.
func (x *XServer) environ(base []string) []string {
	env := make([]string, 0, len(base)+2)
	for _, kv := range base {
		if strings.HasPrefix(kv, "DISPLAY=") || strings.HasPrefix(kv, "XAUTHORITY=") {
			continue
		}
		env = append(env, kv)
	}
	return append(env,
		fmt.Sprintf("DISPLAY=:%d", x.display),
		"XAUTHORITY="+x.auth,
	)
}
