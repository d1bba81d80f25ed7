package inspect

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// ParseShellVars decodes KEY=VALUE lines printed by xdotool's --shell flag.
// Lines without '=' are ignored.
func ParseShellVars(output string) map[string]string {
	vars := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = value
	}
	return vars
}

// MouseLocation is the decoded output of "getmouselocation --shell".
type MouseLocation struct {
	X, Y   int
	Screen int
	Window string
}

// ParseMouseLocation decodes "getmouselocation --shell" output.
func ParseMouseLocation(output string) (*MouseLocation, error) {
	vars := ParseShellVars(output)
	ints, err := requireInts(vars, "X", "Y", "SCREEN")
	if err != nil {
		return nil, fmt.Errorf("invalid mouse location: %w", err)
	}
	return &MouseLocation{
		X:      ints["X"],
		Y:      ints["Y"],
		Screen: ints["SCREEN"],
		Window: vars["WINDOW"],
	}, nil
}

// Geometry is the decoded output of "getwindowgeometry --shell".
type Geometry struct {
	Window        string
	X, Y          int
	Width, Height int
	Screen        int
}

// ParseGeometry decodes "getwindowgeometry --shell" output.
func ParseGeometry(output string) (*Geometry, error) {
	vars := ParseShellVars(output)
	ints, err := requireInts(vars, "X", "Y", "WIDTH", "HEIGHT", "SCREEN")
	if err != nil {
		return nil, fmt.Errorf("invalid window geometry: %w", err)
	}
	return &Geometry{
		Window: vars["WINDOW"],
		X:      ints["X"],
		Y:      ints["Y"],
		Width:  ints["WIDTH"],
		Height: ints["HEIGHT"],
		Screen: ints["SCREEN"],
	}, nil
}

func requireInts(vars map[string]string, keys ...string) (map[string]int, error) {
	out := make(map[string]int, len(keys))
	for _, key := range keys {
		raw, ok := vars[key]
		if !ok {
			return nil, fmt.Errorf("missing %s", key)
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out[key] = n
	}
	return out, nil
}
