package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Source supplies candidate files in order. Next returns io.EOF once the
// stream is exhausted.
type Source interface {
	Next(ctx context.Context) (*File, error)
}

// Sink receives accepted files. End is called exactly once after the last
// candidate has been handled, and never after an abort or a fatal error.
type Sink interface {
	Emit(ctx context.Context, f *File) error
	End(ctx context.Context) error
}

// Summary counts what happened to the candidates of one run.
type Summary struct {
	Handled int // Candidates that reached emit or drop
	Emitted int
	Dropped int
}

// Run streams every candidate from src through the resolver into dst, one
// file at a time. The next candidate is requested only after the current
// one is fully handled.
//
// When the operator aborts, Run returns ErrAborted without reading further
// candidates and without ending the sink.
//
// Streams of dropped candidates, and of the current candidate on abort or
// error, are closed. Emitted streams belong to the sink.
func Run(ctx context.Context, r *Resolver, src Source, dst Sink) (Summary, error) {
	var sum Summary

	for {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		f, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return sum, fmt.Errorf("failed to read candidate: %w", err)
		}

		outcome, err := r.Resolve(f)
		if err != nil {
			_ = f.Close()
			return sum, err
		}

		switch outcome {
		case Halt:
			_ = f.Close()
			return sum, ErrAborted
		case Emit:
			if err := dst.Emit(ctx, f); err != nil {
				_ = f.Close()
				return sum, fmt.Errorf("failed to emit %s: %w", f.Relative, err)
			}
			sum.Emitted++
		case Drop:
			_ = f.Close()
			sum.Dropped++
		}
		sum.Handled++
	}

	if err := dst.End(ctx); err != nil {
		return sum, fmt.Errorf("failed to end stream: %w", err)
	}

	return sum, nil
}

// Pipe is the channel form of Run. Accepted files are sent on the returned
// file channel, which is closed when in is drained. The error channel
// receives at most one value (ErrAborted on abort) and is then closed; on
// abort or error the file channel is left open so consumers never observe
// a normal end of stream.
func Pipe(ctx context.Context, r *Resolver, in <-chan *File) (<-chan *File, <-chan error) {
	out := make(chan *File)
	errc := make(chan error, 1)

	go func() {
		defer close(errc)

		sink := &chanSink{out: out}
		_, err := Run(ctx, r, ChanSource(in), sink)
		if err != nil {
			errc <- err
		}
	}()

	return out, errc
}

type chanSink struct {
	out chan<- *File
}

func (s *chanSink) Emit(ctx context.Context, f *File) error {
	select {
	case s.out <- f:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *chanSink) End(context.Context) error {
	close(s.out)
	return nil
}

// ChanSource adapts a channel to a Source. A closed channel ends the stream.
type ChanSource <-chan *File

// Next receives the next candidate.
func (c ChanSource) Next(ctx context.Context) (*File, error) {
	select {
	case f, ok := <-c:
		if !ok {
			return nil, io.EOF
		}
		return f, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// SliceSource yields a fixed list of candidates.
type SliceSource struct {
	files []*File
	pos   int
}

// NewSliceSource creates a source over files.
func NewSliceSource(files ...*File) *SliceSource {
	return &SliceSource{files: files}
}

// Next returns the next file or io.EOF.
func (s *SliceSource) Next(context.Context) (*File, error) {
	if s.pos >= len(s.files) {
		return nil, io.EOF
	}
	f := s.files[s.pos]
	s.pos++
	return f, nil
}

// CollectSink keeps emitted files in memory.
type CollectSink struct {
	Files []*File
	Ended bool
}

// Emit appends f.
func (s *CollectSink) Emit(_ context.Context, f *File) error {
	s.Files = append(s.Files, f)
	return nil
}

// End marks the sink as ended.
func (s *CollectSink) End(context.Context) error {
	s.Ended = true
	return nil
}
