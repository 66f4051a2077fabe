// Package tkutil wraps the Tcl eval extension with formatting, logging and
// result parsing helpers.
package tkutil

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	evalext "modernc.org/tk9.0/extensions/eval"
)

// evalFunc is swapped in tests that run without a Tcl interpreter.
var evalFunc = evalext.Eval

func Eval(format string, a ...any) (string, error) {
	script := fmt.Sprintf(format, a...)
	r, err := evalFunc(script)
	if err != nil {
		return "", fmt.Errorf("tk eval=%s; err=%w", script, err)
	}
	return r, nil
}

func EvalOrEmpty(format string, a ...any) string {
	out, err := Eval(format, a...)
	if err != nil {
		slog.Debug("tk eval or empty", slog.Any("error", err))
		return ""
	}
	return out
}

// Run evaluates a script whose result is not needed, logging failures.
func Run(format string, a ...any) {
	if _, err := Eval(format, a...); err != nil {
		slog.Debug("tk eval", slog.Any("error", err))
	}
}

// Atoi parses a Tcl integer result; empty or malformed input yields 0 and a
// float result is truncated.
func Atoi(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		if f, ferr := strconv.ParseFloat(raw, 64); ferr == nil {
			return int(f)
		}
		return 0
	}
	return v
}

// Bool parses a Tcl boolean result.
func Bool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
