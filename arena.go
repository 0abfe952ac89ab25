// seehuhn.de/go/glitter - a polygon scan converter
// Copyright (c) 2008  M Joonas Pihlaja
// Copyright (c) 2007  David Turner
//
// Permission is hereby granted, free of charge, to any person
// obtaining a copy of this software and associated documentation
// files (the "Software"), to deal in the Software without
// restriction, including without limitation the rights to use,
// copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the
// Software is furnished to do so, subject to the following
// conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES
// OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT
// HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
// WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.

package glitter

// poolChunk is one chunk of a pool's backing storage. data is always
// sliced from a fixed-capacity backing array, so taking the address
// of an element remains valid for as long as the chunk is reachable:
// growing data within its capacity never triggers a reallocation.
type poolChunk[T any] struct {
	data []T
	prev *poolChunk[T]
}

// pool is a bump-allocating memory pool for edges or cells, with
// per-reset recycling of chunks. This is the dominant allocation
// strategy of the scan converter: resetting a pool never frees its
// chunks, it just moves them to a free list for the next render.
//
// A pool is not safe for concurrent use; the converter that owns it
// is documented as single-threaded.
type pool[T any] struct {
	current      *poolChunk[T]
	firstFree    *poolChunk[T]
	defaultCap   int
	sentinel     poolChunk[T]
	sentinelBack []T
}

// newPool creates a pool whose first chunk is created lazily from
// mallocs of at least defaultCapacity elements, after first
// satisfying embeddedCapacity elements' worth of allocations from an
// inline buffer requiring no allocation at all.
func newPool[T any](defaultCapacity, embeddedCapacity int) *pool[T] {
	p := &pool[T]{defaultCap: defaultCapacity}
	p.sentinelBack = make([]T, 0, embeddedCapacity)
	p.sentinel.data = p.sentinelBack
	p.current = &p.sentinel
	return p
}

// allocOne returns a pointer to a freshly zeroed T from the pool. The
// pool retains ownership: the pointer is valid until the next reset.
func (p *pool[T]) allocOne() *T {
	c := p.current
	n := len(c.data)
	if n < cap(c.data) {
		c.data = c.data[:n+1]
		obj := &c.data[n]
		*obj = *new(T)
		return obj
	}
	return p.allocFromNewChunk()
}

// allocFromNewChunk satisfies an allocation that didn't fit in the
// current chunk, first trying the free list before mallocing new
// backing storage.
func (p *pool[T]) allocFromNewChunk() *T {
	var chunk *poolChunk[T]
	if p.firstFree != nil {
		chunk = p.firstFree
		p.firstFree = chunk.prev
		chunk.data = chunk.data[:0]
		chunk.prev = p.current
	} else {
		chunk = &poolChunk[T]{
			data: make([]T, 0, p.defaultCap),
			prev: p.current,
		}
	}
	p.current = chunk
	chunk.data = chunk.data[:1]
	obj := &chunk.data[0]
	*obj = *new(T)
	return obj
}

// reset relinquishes all pool-allocated objects, splicing the chain
// of in-use chunks onto the free list without freeing them. The most
// recently used chunks end up at the head of the free list, so
// subsequent resets find warm (right-sized) chunks first.
func (p *pool[T]) reset() {
	chunk := p.current
	if chunk != &p.sentinel {
		c := chunk
		for c.prev != &p.sentinel {
			c = c.prev
		}
		c.prev = p.firstFree
		p.firstFree = p.current
	}
	p.current = &p.sentinel
	p.sentinel.data = p.sentinelBack[:0]
}
