package inspect

import (
	"testing"

	"github.com/actionsum/xdotool/pkg/xdotool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSource struct {
	active *xdotool.Result
	names  map[string]*xdotool.Result
	class  *xdotool.Result
	pid    *xdotool.Result
}

func ok(out string) *xdotool.Result {
	return &xdotool.Result{Stdout: []byte(out)}
}

func fail(code int, stderr string) *xdotool.Result {
	return &xdotool.Result{Stderr: []byte(stderr), ExitCode: code}
}

func (m *mockSource) GetActiveWindow() *xdotool.Result { return m.active }

func (m *mockSource) GetWindowName(window string) *xdotool.Result {
	if res, found := m.names[window]; found {
		return res
	}
	return fail(1, "X Error: BadWindow")
}

func (m *mockSource) GetWindowClassName(string) *xdotool.Result { return m.class }
func (m *mockSource) GetWindowPID(string) *xdotool.Result       { return m.pid }

func TestActiveWindow(t *testing.T) {
	src := &mockSource{
		active: ok("48234567\n"),
		names:  map[string]*xdotool.Result{"48234567": ok("  vim - notes.txt \n")},
		class:  ok("kitty\n"),
		pid:    ok("4242\n"),
	}

	info, err := ActiveWindow(src)
	require.NoError(t, err)
	assert.Equal(t, &WindowInfo{
		ID:        "48234567",
		Name:      "  vim - notes.txt ",
		ClassName: "kitty",
		PID:       4242,
	}, info)
}

func TestActiveWindowOptionalFields(t *testing.T) {
	src := &mockSource{
		active: ok("1\n"),
		names:  map[string]*xdotool.Result{"1": ok("Firefox\n")},
		class:  fail(1, "unknown command"),
		pid:    fail(1, "window has no _NET_WM_PID"),
	}

	info, err := ActiveWindow(src)
	require.NoError(t, err)
	assert.Equal(t, "Firefox", info.Name)
	assert.Empty(t, info.ClassName)
	assert.Zero(t, info.PID)
}

func TestActiveWindowErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     *mockSource
		wantErr string
	}{
		{
			name:    "active window fails",
			src:     &mockSource{active: fail(1, "Your windowmanager claims not to support _NET_ACTIVE_WINDOW")},
			wantErr: "exit status 1: Your windowmanager",
		},
		{
			name:    "empty output",
			src:     &mockSource{active: ok("\n")},
			wantErr: "no active window",
		},
		{
			name:    "name fails",
			src:     &mockSource{active: ok("99\n")},
			wantErr: "failed to get window name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := ActiveWindow(tt.src)
			assert.Nil(t, info)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWindowIDs(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, WindowIDs(ok("1\n2\n3\n")))
	assert.Empty(t, WindowIDs(ok("")))
}

func TestXServerIsWindowSource(t *testing.T) {
	var _ WindowSource = (*xdotool.XServer)(nil)
}
