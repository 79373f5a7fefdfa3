package codec

import (
	"fmt"

	"github.com/gostdlib/base/concurrency/sync"
	"github.com/gostdlib/base/context"

	"github.com/bearlytools/shapejson/languages/go/cycle"
	"github.com/bearlytools/shapejson/languages/go/errors"
	"github.com/bearlytools/shapejson/languages/go/pool"
)

// Sinks are pooled separately for pretty and compact output, since the encoder options
// differ and the buffers grow to different sizes.
var (
	prettySinks = sync.NewPool[*Sink](
		context.Background(),
		"shapejsonPrettySinks",
		newSink,
		sync.WithBuffer(100),
	)
	compactSinks = sync.NewPool[*Sink](
		context.Background(),
		"shapejsonCompactSinks",
		newSink,
		sync.WithBuffer(100),
	)
	cursors = sync.NewPool[*Cursor](
		context.Background(),
		"shapejsonCursors",
		newCursor,
		sync.WithBuffer(100),
	)
	trackers = sync.NewPool[*cycle.Tracker](
		context.Background(),
		"shapejsonTrackers",
		cycle.New,
		sync.WithBuffer(100),
	)
)

func rentSink(ctx context.Context, opts Options) *Sink {
	var s *Sink
	if opts.Pretty {
		s = prettySinks.Get(ctx)
	} else {
		s = compactSinks.Get(ctx)
	}
	s.reset(opts)
	return s
}

func returnSink(ctx context.Context, s *Sink) {
	// A Sink that grew past the ceiling is left to the GC rather than pinning the memory.
	if s.buf.Cap() > pool.Ceiling {
		return
	}
	pretty := s.opts.Pretty
	s.reset(Options{})
	if pretty {
		prettySinks.Put(ctx, s)
		return
	}
	compactSinks.Put(ctx, s)
}

// Encode rents a Sink, and a Tracker if opts.DetectCycles is set, and calls fn to write one
// top-level value. It returns the text written, or the first error recorded. Nothing is
// returned on error.
func Encode(opts Options, fn func(s *Sink, tr *cycle.Tracker)) (string, error) {
	ctx := context.Background()

	s := rentSink(ctx, opts)
	defer returnSink(ctx, s)

	var tr *cycle.Tracker
	if opts.DetectCycles {
		tr = trackers.Get(ctx)
		defer func() {
			tr.Reset()
			trackers.Put(ctx, tr)
		}()
	}

	fn(s, tr)
	if s.err != nil {
		return "", s.err
	}
	return s.output(), nil
}

// Decode rents a Cursor over text and calls fn to read one top-level value. Anything but
// whitespace after that value is an error.
func Decode(text string, opts Options, fn func(c *Cursor)) error {
	ctx := context.Background()

	c := cursors.Get(ctx)
	defer func() {
		c.release(ctx)
		cursors.Put(ctx, c)
	}()

	c.load(ctx, text, opts)
	fn(c)
	c.finish()
	return c.err
}

// Dispatcher encodes and decodes the record types of one generated package. Each method
// reports false if v is not one of its types.
type Dispatcher interface {
	// Encode writes v, which is a record or a pointer to one.
	Encode(s *Sink, v any, tr *cycle.Tracker) bool
	// Decode reads into v, which must be a pointer to a record. A record passed by value is
	// still reported as handled, with the error recorded on c.
	Decode(c *Cursor, v any) bool
}

var (
	regMu    sync.RWMutex
	registry []Dispatcher
)

// Register adds d to the dispatchers consulted by EncodeValue and DecodeValue. Generated
// packages call this from init().
func Register(d Dispatcher) {
	regMu.Lock()
	defer regMu.Unlock()
	registry = append(registry, d)
}

func dispatchers() []Dispatcher {
	regMu.RLock()
	defer regMu.RUnlock()
	return registry
}

// EncodeValue encodes v with the generated codec registered for its type.
func EncodeValue(v any, opts Options) (string, error) {
	ds := dispatchers()
	var found bool
	out, err := Encode(opts, func(s *Sink, tr *cycle.Tracker) {
		for _, d := range ds {
			if d.Encode(s, v, tr) {
				found = true
				return
			}
		}
	})
	if !found {
		return "", &errors.NotRegisteredError{GoType: fmt.Sprintf("%T", v)}
	}
	return out, err
}

// DecodeValue decodes text into v with the generated codec registered for v's type.
func DecodeValue(text string, v any, opts Options) error {
	ds := dispatchers()
	var found bool
	err := Decode(text, opts, func(c *Cursor) {
		for _, d := range ds {
			if d.Decode(c, v) {
				found = true
				return
			}
		}
		// Stop finish() from reporting the unread input.
		c.Fail(&errors.NotRegisteredError{GoType: fmt.Sprintf("%T", v)})
	})
	if !found {
		return &errors.NotRegisteredError{GoType: fmt.Sprintf("%T", v)}
	}
	return err
}
