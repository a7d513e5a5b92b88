package generator

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type failingSource struct{ err error }

func (s failingSource) Next(context.Context) (*File, error) { return nil, s.err }

type failingSink struct{ CollectSink }

func (s *failingSink) Emit(context.Context, *File) error { return errors.New("disk full") }

func TestRun_NewFilesPassThrough(t *testing.T) {
	probe := &mockProbe{}
	prompter := &mockPrompter{}
	probe.On("Stat", mock.Anything).Return(Status{}, nil)

	r, _ := newTestResolver(t, probe, prompter, nil)
	sink := &CollectSink{}

	sum, err := Run(context.Background(), r, NewSliceSource(
		NewDir("pkg"),
		NewFile("pkg/a.go", []byte("package pkg\n")),
		NewFile("README.md", nil),
	), sink)
	require.NoError(t, err)

	assert.Equal(t, Summary{Handled: 3, Emitted: 3}, sum)
	require.Len(t, sink.Files, 3)
	assert.Equal(t, "pkg", sink.Files[0].Relative)
	assert.Equal(t, "README.md", sink.Files[2].Relative)
	assert.True(t, sink.Ended)
	prompter.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
}

func TestRun_EmptySourceEnds(t *testing.T) {
	r, _ := newTestResolver(t, &mockProbe{}, &mockPrompter{}, nil)
	sink := &CollectSink{}

	sum, err := Run(context.Background(), r, NewSliceSource(), sink)
	require.NoError(t, err)

	assert.Zero(t, sum.Handled)
	assert.True(t, sink.Ended)
}

func TestRun_SourceError(t *testing.T) {
	r, _ := newTestResolver(t, &mockProbe{}, &mockPrompter{}, nil)
	sink := &CollectSink{}

	_, err := Run(context.Background(), r, failingSource{err: errors.New("broken pipe")}, sink)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
	assert.False(t, sink.Ended)
}

func TestRun_EmitError(t *testing.T) {
	probe := &mockProbe{}
	probe.On("Stat", mock.Anything).Return(Status{}, nil)
	r, _ := newTestResolver(t, probe, &mockPrompter{}, nil)
	sink := &failingSink{}

	_, err := Run(context.Background(), r, NewSliceSource(NewFile("a.txt", []byte("x"))), sink)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.False(t, sink.Ended)
}

func TestRun_Cancelled(t *testing.T) {
	r, _ := newTestResolver(t, &mockProbe{}, &mockPrompter{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, r, NewSliceSource(NewFile("a.txt", nil)), &CollectSink{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPipe(t *testing.T) {
	probe := &mockProbe{}
	prompter := &mockPrompter{}
	probe.On("Stat", destPath("new.txt")).Return(Status{}, nil)
	conflicting(probe, "same.txt", "same")
	conflicting(probe, "changed.txt", "old")
	prompter.On("Ask", "changed.txt", mock.Anything).Return(Replace, nil).Once()

	r, _ := newTestResolver(t, probe, prompter, nil)

	in := make(chan *File, 3)
	in <- NewFile("new.txt", []byte("new"))
	in <- NewFile("same.txt", []byte("same"))
	in <- NewFile("changed.txt", []byte("new"))
	close(in)

	out, errc := Pipe(context.Background(), r, in)

	var got []string
	for f := range out {
		got = append(got, f.Relative)
	}

	assert.Equal(t, []string{"new.txt", "changed.txt"}, got)
	assert.NoError(t, <-errc)
}

func TestPipe_Abort(t *testing.T) {
	probe := &mockProbe{}
	prompter := &mockPrompter{}
	conflicting(probe, "a.txt", "old")
	prompter.On("Ask", "a.txt", mock.Anything).Return(Abort, nil).Once()

	r, _ := newTestResolver(t, probe, prompter, nil)

	in := make(chan *File, 2)
	in <- NewFile("a.txt", []byte("new"))
	in <- NewFile("b.txt", []byte("new"))
	close(in)

	_, errc := Pipe(context.Background(), r, in)

	require.ErrorIs(t, <-errc, ErrAborted)
	probe.AssertNotCalled(t, "Stat", destPath("b.txt"))
}

func TestChanSource_Closed(t *testing.T) {
	in := make(chan *File)
	close(in)

	_, err := ChanSource(in).Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestRun_ClosesUnemittedStreams(t *testing.T) {
	tests := []struct {
		name    string
		answer  Action
		wantErr error
	}{
		{"skip", Skip, nil},
		{"skip all", SkipAll, nil},
		{"abort", Abort, ErrAborted},
		{"diff on stream", ShowDiff, ErrStreamDiff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := &mockProbe{}
			prompter := &mockPrompter{}
			conflicting(probe, "a.txt", "old")
			prompter.On("Ask", "a.txt", mock.Anything).Return(tt.answer, nil).Once()

			r, _ := newTestResolver(t, probe, prompter, nil)
			stream := &trackedStream{Reader: strings.NewReader("new")}

			_, err := Run(context.Background(), r, NewSliceSource(NewStreamFile("a.txt", stream)), &CollectSink{})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, 1, stream.closed)
		})
	}
}

func TestRun_EmittedStreamLeftToSink(t *testing.T) {
	probe := &mockProbe{}
	prompter := &mockPrompter{}
	probe.On("Stat", destPath("a.txt")).Return(Status{}, nil)

	r, _ := newTestResolver(t, probe, prompter, nil)
	stream := &trackedStream{Reader: strings.NewReader("new")}
	sink := &CollectSink{}

	_, err := Run(context.Background(), r, NewSliceSource(NewStreamFile("a.txt", stream)), sink)
	require.NoError(t, err)

	assert.Zero(t, stream.closed)
	require.Len(t, sink.Files, 1)
	assert.True(t, sink.Files[0].IsStream())
}
