// Package pool provides size-classed byte buffers for decoding. Inputs are copied into a
// buffer of the smallest class that holds them. Inputs larger than the biggest class get a
// plain allocation that is left to the GC. Buffers are zeroed before they go back to a pool,
// so no input survives into the next rental.
package pool

import (
	"github.com/gostdlib/base/concurrency/sync"
	"github.com/gostdlib/base/context"
	"github.com/gostdlib/base/values/sizes"
)

// Ceiling is the largest buffer that is pooled.
var Ceiling = 1 * sizes.MiB

// Buffers is a set of pools, one per size class.
type Buffers struct {
	_1K   *sync.Pool[*[]byte]
	_4K   *sync.Pool[*[]byte]
	_16K  *sync.Pool[*[]byte]
	_64K  *sync.Pool[*[]byte]
	_256K *sync.Pool[*[]byte]
	_1M   *sync.Pool[*[]byte]
}

// Decode is the shared set of decode buffers.
var Decode = NewBuffers()

func newClass(name string, size int) *sync.Pool[*[]byte] {
	return sync.NewPool(
		context.Background(),
		name,
		func() *[]byte {
			b := make([]byte, size)
			return &b
		},
		sync.WithBuffer(10),
	)
}

// NewBuffers creates a Buffers with empty pools.
func NewBuffers() *Buffers {
	return &Buffers{
		_1K:   newClass("shapejsonDecode1K", 1*sizes.KiB),
		_4K:   newClass("shapejsonDecode4K", 4*sizes.KiB),
		_16K:  newClass("shapejsonDecode16K", 16*sizes.KiB),
		_64K:  newClass("shapejsonDecode64K", 64*sizes.KiB),
		_256K: newClass("shapejsonDecode256K", 256*sizes.KiB),
		_1M:   newClass("shapejsonDecode1M", 1*sizes.MiB),
	}
}

// Get returns a slice with len == sizeBytes. The cap is the size class it came from.
func (d *Buffers) Get(ctx context.Context, sizeBytes int) []byte {
	var b *[]byte
	switch {
	case sizeBytes <= 1*sizes.KiB:
		b = d._1K.Get(ctx)
	case sizeBytes <= 4*sizes.KiB:
		b = d._4K.Get(ctx)
	case sizeBytes <= 16*sizes.KiB:
		b = d._16K.Get(ctx)
	case sizeBytes <= 64*sizes.KiB:
		b = d._64K.Get(ctx)
	case sizeBytes <= 256*sizes.KiB:
		b = d._256K.Get(ctx)
	case sizeBytes <= 1*sizes.MiB:
		b = d._1M.Get(ctx)
	default:
		return make([]byte, sizeBytes)
	}
	return (*b)[:sizeBytes]
}

// Put zeroes b and returns it to the pool matching its capacity. Slices whose capacity is
// not a size class are dropped.
func (d *Buffers) Put(ctx context.Context, b []byte) {
	b = b[:cap(b)]
	clear(b)

	switch cap(b) {
	case 1 * sizes.KiB:
		d._1K.Put(ctx, &b)
	case 4 * sizes.KiB:
		d._4K.Put(ctx, &b)
	case 16 * sizes.KiB:
		d._16K.Put(ctx, &b)
	case 64 * sizes.KiB:
		d._64K.Put(ctx, &b)
	case 256 * sizes.KiB:
		d._256K.Put(ctx, &b)
	case 1 * sizes.MiB:
		d._1M.Put(ctx, &b)
	default:
		// Not one of ours, let the GC have it.
	}
}

// Pooled reports if a slice of sizeBytes would come from a pool.
func Pooled(sizeBytes int) bool {
	return sizeBytes <= Ceiling
}
