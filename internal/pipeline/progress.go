// internal/pipeline/progress.go
package pipeline

import (
	"io"
	"sync"

	pb "github.com/cheggaaa/pb/v3"
)

type progress interface {
	Increment()
	Finish()
}

type noProgress struct{}

func (noProgress) Increment() {}
func (noProgress) Finish()    {}

type barProgress struct{ bar *pb.ProgressBar }

func (p barProgress) Increment() { p.bar.Increment() }
func (p barProgress) Finish()    { p.bar.Finish() }

func newProgress(enabled bool, w io.Writer, total int) progress {
	if !enabled || w == nil || total == 0 {
		return noProgress{}
	}
	bar := pb.New(total)
	bar.SetWriter(w)
	bar.Start()
	return barProgress{bar: bar}
}

// lockedWriter serializes the bar's redraws with diagnostic lines.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
