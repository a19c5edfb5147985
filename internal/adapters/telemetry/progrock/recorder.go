// Package progrock renders release pipeline progress with the progrock tape.
package progrock

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"go.trai.ch/crucible/internal/core/ports"
)

// Recorder implements ports.Telemetry on top of a progrock writer.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu  sync.Mutex
	out io.Writer
}

// New creates a Recorder with a default tape rendering to stderr.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
		out: os.Stderr,
	}
}

// SetOutput replaces the render destination. Used for testing.
func (r *Recorder) SetOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out = w
}

// Record starts a vertex for the named pipeline step. The vertex travels on
// the returned context so collaborators can stream output into it.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close renders the final state of the tape and closes the recording
// session.
func (r *Recorder) Close() error {
	if tape, ok := r.w.(*progrock.Tape); ok {
		r.mu.Lock()
		out := r.out
		r.mu.Unlock()
		if err := tape.Render(out, progrock.DefaultUI()); err != nil {
			return err
		}
	}
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
