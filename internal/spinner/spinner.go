// Package spinner renders a one-line terminal activity indicator used while
// the detection probes run.
package spinner

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const frameInterval = 80 * time.Millisecond

// Start begins animating message on w and returns a stop function that halts
// the animation and erases the line. The stop function is idempotent and does
// not return until the line is clear, so callers can print immediately after.
func Start(w io.Writer, message string) (stop func()) {
	done := make(chan struct{})
	cleared := make(chan struct{})

	go func() {
		defer close(cleared)
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()

		// marker trails the message so the text does not jump when the
		// line is first drawn.
		frame := 0
		draw := func() {
			fmt.Fprintf(w, "\r%s %s", message, frames[frame%len(frames)]) //nolint:errcheck
			frame++
		}
		draw()
		for {
			select {
			case <-done:
				width := runewidth.StringWidth(message) + 2
				fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", width)) //nolint:errcheck
				return
			case <-ticker.C:
				draw()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
		<-cleared
	}
}
