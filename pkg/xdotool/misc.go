package xdotool

import "strconv"

// RunProgram asks xdotool to execute program, detached unless ExecSync is
// given. program is passed through as positional arguments, so it may hold
// several words; callers quote words that contain spaces.
func (x *XServer) RunProgram(program string, opts Options[ExecOption]) *Result {
	return x.Run(ExecWith(opts), program)
}

// Sleep makes xdotool sleep for the given number of seconds.
func (x *XServer) Sleep(seconds float64) *Result {
	return x.Run(Sleep.Command(), strconv.FormatFloat(seconds, 'f', -1, 64))
}

// Version prints the xdotool version.
func (x *XServer) Version() *Result {
	return x.Run(Version.Command(), "")
}
