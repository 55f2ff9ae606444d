package progress

import (
	"context"
	"time"
)

// Inspired by https://github.com/machinebox/progress/blob/master/progress.go.

// Evaluator facilitates progress monitoring.
type Evaluator interface {
	// Progress returns a total, a delta since it's last call, and any error
	// encountered since the last call to Progress.
	Progress() (int, int, error)
}

// Progress is an message reporting a cumulative total and change since the last
// Progress message.
type Progress struct {
	// Total is the cumulative total.
	Total int
	// Delta is the difference between Total and the previous message's Total.
	Delta int
}

// NewTicker sends an [Evaluator]'s [Progress] to ch on an interval. ch is
// closed once ctx is done or the evaluator reports an error, after a final
// message.
func NewTicker(ctx context.Context, eval Evaluator, d time.Duration, ch chan<- Progress) {
	t := time.NewTicker(d)

	go func() {
		defer close(ch)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				total, delta, err := eval.Progress()
				p := Progress{
					Total: total,
					Delta: delta,
				}

				select {
				case ch <- p:
				case <-ctx.Done():
					return
				}
				if err != nil { // io.EOF, or other issues
					return
				}
			}
		}
	}()
}
