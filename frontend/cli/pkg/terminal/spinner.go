package terminal

import (
	"context"
	"fmt"
	"io"
	"time"
)

var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

const spinnerInterval = 500 * time.Millisecond

// Spin runs task while a spinner labelled label animates on w, then replaces
// the spinner with a success or error line. Nothing is drawn before the
// first interval elapses, so quick tasks leave only the final line.
func Spin(ctx context.Context, w io.Writer, label string, task func(context.Context) error) error {
	done := make(chan struct{})
	drawn := make(chan struct{})

	go func() {
		defer close(drawn)

		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for frame := 0; ; frame++ {
			select {
			case <-done:
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s %s", spinnerFrames[frame%len(spinnerFrames)], label)
			}
		}
	}()

	err := task(ctx)
	close(done)
	<-drawn

	symbol := SuccessSymbol
	if err != nil {
		symbol = ErrorSymbol
	}
	fmt.Fprintf(w, "\r\033[K%s %s\n", symbol, label)
	return err
}
