package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNoTool is returned when none of the clipboard commands is installed.
var ErrNoTool = errors.New("no clipboard tool found")

// System reads the desktop clipboard through the platform's command line
// tool. It is safe to call from any goroutine, unlike the windowing
// library's clipboard which must stay on the main thread.
type System struct {
	// Command overrides the platform default, e.g. {"xsel", "-ob"}.
	Command []string
}

// ReadClipboardText runs the first installed candidate command. The last
// command failure is returned if every installed candidate fails.
func (s System) ReadClipboardText() (string, error) {
	candidates := platformCommands
	if len(s.Command) > 0 {
		candidates = [][]string{s.Command}
	}
	var lastErr error
	for _, argv := range candidates {
		if _, err := exec.LookPath(argv[0]); err != nil {
			continue
		}
		out, err := exec.Command(argv[0], argv[1:]...).Output()
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", strings.Join(argv, " "), err)
			continue
		}
		return string(bytes.TrimRight(out, "\r\n")), nil
	}
	if lastErr != nil {
		return "", lastErr
	}
	return "", ErrNoTool
}
