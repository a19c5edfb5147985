package ports

import (
	"context"
	"io"
)

// Telemetry records progress for the steps of a release pipeline.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a new vertex for the named step. The returned context
	// carries the vertex so downstream collaborators can stream into it.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded pipeline step.
type Vertex interface {
	// Stdout returns a writer capturing the step's standard output.
	Stdout() io.Writer

	// Stderr returns a writer capturing the step's error output.
	Stderr() io.Writer

	// Complete marks the step as finished, successfully or with an error.
	Complete(err error)
}

type vertexContextKey struct{}

// ContextWithVertex attaches the vertex to the context.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexContextKey{}, v)
}

// VertexFromContext returns the vertex attached to the context, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexContextKey{}).(Vertex)
	return v, ok
}
