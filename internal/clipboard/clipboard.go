// Package clipboard reads the host clipboard off the tick goroutine.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"mapeditor/internal/host"
)

var (
	// ErrTimeout is returned when the clipboard does not answer in time.
	ErrTimeout = errors.New("clipboard read timed out")
	// ErrEmpty is returned when the clipboard holds only whitespace.
	ErrEmpty = errors.New("clipboard is empty")
)

// Reader runs each clipboard read in a worker goroutine and joins it. With a
// non-zero timeout the join gives up after that long; the worker is left to
// finish on its own since the OS call cannot be interrupted.
type Reader struct {
	src     host.ClipboardSource
	timeout time.Duration
}

func NewReader(src host.ClipboardSource, timeout time.Duration) *Reader {
	return &Reader{src: src, timeout: timeout}
}

// Read returns the clipboard text with surrounding whitespace trimmed. A
// failing source or an empty clipboard is an error.
func (r *Reader) Read(ctx context.Context) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	result := make(chan string, 1)
	var g errgroup.Group
	g.Go(func() error {
		text, err := r.src.ReadClipboardText()
		if err != nil {
			return fmt.Errorf("read clipboard: %w", err)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return ErrEmpty
		}
		result <- text
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			return "", err
		}
		return <-result, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s", ErrTimeout, r.timeout)
		}
		return "", ctx.Err()
	}
}
