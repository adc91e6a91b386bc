// Package viewer connects a drawing source to the viewport: it lists drawings, fetches the
// selected one off the render thread, and hands finished fetches back to the render loop.
package viewer

import (
	"context"
	"errors"

	"strokeview/internal/drawing"
	"strokeview/internal/logger"
)

// MsgNoDrawings is logged when the source has nothing to show.
const MsgNoDrawings = "no drawings"

type result struct {
	seq     uint64
	list    []drawing.Summary
	isList  bool
	drawing *drawing.Drawing
	err     error
}

// ApplyFunc installs a fetched drawing, normally viewport.Scene.LoadDrawing.
type ApplyFunc func(*drawing.Drawing) error

// Loader tracks the list of drawings and the current selection. Fetches run in goroutines;
// Poll and Await must be called from the goroutine that owns the scene. Only the most recent
// selection is ever applied: results of superseded fetches are dropped.
type Loader struct {
	ctx    context.Context
	cancel context.CancelFunc
	src    drawing.Source
	log    *logger.Logger

	results chan result
	seq     uint64
	pending int

	summaries []drawing.Summary
	index     int
	want      string
	current   string
}

// NewLoader returns a Loader over src. want, if set, is selected once the list arrives instead
// of the first drawing.
func NewLoader(src drawing.Source, log *logger.Logger, want string) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		ctx:     ctx,
		cancel:  cancel,
		src:     src,
		log:     log,
		results: make(chan result, 8),
		index:   -1,
		want:    want,
	}
}

// Close cancels in-flight fetches.
func (l *Loader) Close() {
	l.cancel()
}

// Refresh fetches the drawing list.
func (l *Loader) Refresh() {
	l.pending++
	go func() {
		list, err := l.src.List(l.ctx)
		l.send(result{isList: true, list: list, err: err})
	}()
}

// Select fetches the i-th drawing of the list, superseding any fetch still in flight.
func (l *Loader) Select(i int) {
	if i < 0 || i >= len(l.summaries) {
		return
	}
	l.index = i
	l.fetch(l.summaries[i].DrawingID)
}

// SelectID fetches the drawing with the given id, whether or not it is in the list.
func (l *Loader) SelectID(id string) {
	for i, s := range l.summaries {
		if s.DrawingID == id {
			l.index = i
		}
	}
	l.fetch(id)
}

func (l *Loader) fetch(id string) {
	l.seq++
	seq := l.seq
	l.pending++
	l.log.Logf("loading %s", id)
	go func() {
		d, err := l.src.Get(l.ctx, id)
		l.send(result{seq: seq, drawing: d, err: err})
	}()
}

// send delivers r unless the loader has been closed, so fetch goroutines never outlive it.
func (l *Loader) send(r result) {
	select {
	case l.results <- r:
	case <-l.ctx.Done():
	}
}

// Next selects the following drawing, wrapping around.
func (l *Loader) Next() {
	if n := len(l.summaries); n > 0 {
		l.Select((l.index + 1) % n)
	}
}

// Prev selects the previous drawing, wrapping around.
func (l *Loader) Prev() {
	if n := len(l.summaries); n > 0 {
		l.Select((l.index - 1 + n) % n)
	}
}

// Summaries returns the last fetched list.
func (l *Loader) Summaries() []drawing.Summary {
	return l.summaries
}

// Index returns the selected list position, or -1.
func (l *Loader) Index() int {
	return l.index
}

// Current returns the id of the drawing last applied.
func (l *Loader) Current() string {
	return l.current
}

// Pending reports how many fetches have not been handled yet.
func (l *Loader) Pending() int {
	return l.pending
}

// Poll handles every finished fetch without blocking. Call once per frame.
func (l *Loader) Poll(apply ApplyFunc) {
	for {
		select {
		case r := <-l.results:
			l.handle(r, apply)
		default:
			return
		}
	}
}

// Await blocks until one fetch finishes and handles it.
func (l *Loader) Await(ctx context.Context, apply ApplyFunc) error {
	select {
	case r := <-l.results:
		l.handle(r, apply)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loader) handle(r result, apply ApplyFunc) {
	l.pending--
	if r.isList {
		l.handleList(r)
		return
	}
	if r.seq != l.seq {
		return
	}
	if r.err != nil {
		if !errors.Is(r.err, context.Canceled) {
			l.log.Errorf("%v", r.err)
		}
		return
	}
	if err := apply(r.drawing); err != nil {
		l.log.Errorf("%v", err)
		return
	}
	l.current = r.drawing.DrawingID
	l.log.Logf("showing %s", r.drawing.DrawingID)
}

func (l *Loader) handleList(r result) {
	if r.err != nil {
		l.log.Errorf("list drawings: %v", r.err)
		return
	}
	l.summaries = r.list
	if len(l.summaries) == 0 {
		l.index = -1
		l.log.Errorf("%s", MsgNoDrawings)
		return
	}
	if l.want != "" {
		want := l.want
		l.want = ""
		l.SelectID(want)
		return
	}
	if l.index < 0 || l.index >= len(l.summaries) {
		l.Select(0)
	}
}
