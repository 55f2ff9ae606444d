// Package progress facilitates tracking progress for a standard library io.Reader.
package progress

import (
	"io"
	"sync"
)

// Inspired by https://github.com/machinebox/progress/blob/master/reader.go.

// EvalReader is an [io.Reader] reporting the bytes read through it.
type EvalReader interface {
	io.Reader
	Evaluator
}

// reader maintains progress information on the bytes read through it.
// Implements [Evaluator].
type reader struct {
	r io.Reader

	mu    sync.Mutex
	total int
	delta int
	err   error
}

// NewEvalReader wraps an [io.Reader] with capabilities to report bytes read
// so far and bytes read since the last check.
func NewEvalReader(r io.Reader) EvalReader {
	return &reader{
		r: r,
	}
}

// Read wraps [io.Reader.Read] with internal progress updates.
func (r *reader) Read(p []byte) (n int, err error) {
	n, err = r.r.Read(p)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.total += n
	r.delta += n
	r.err = err
	return
}

// Progress returns the total number of bytes that have been read so far as
// well as bytes read since the last call to Progress.
func (r *reader) Progress() (soFar, sinceLast int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	soFar = r.total
	sinceLast = r.delta
	r.delta = 0
	err = r.err
	return
}
