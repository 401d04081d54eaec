// Package pool implements a fixed-block byte buffer pool.
//
// Blocks are acquired on one goroutine and released on another, typically from
// a transfer completion callback, so the free list is a buffered channel.
package pool

import (
	"fmt"
	"sync"
)

// Pool is a bounded set of equally sized blocks. Smaller size classes are
// served from the same blocks by reslicing.
type Pool struct {
	size int
	free chan []byte

	mu    sync.Mutex
	index map[*byte]int // First byte of each block to its index
	out   []bool        // Blocks currently acquired
}

// New returns a pool of count blocks of size bytes each.
func New(size, count int) *Pool {
	if size <= 0 || count <= 0 {
		panic(fmt.Sprintf("pool: invalid geometry %dx%d", count, size))
	}
	p := &Pool{
		size:  size,
		free:  make(chan []byte, count),
		index: make(map[*byte]int, count),
		out:   make([]bool, count),
	}
	backing := make([]byte, size*count)
	for i := 0; i < count; i++ {
		b := backing[i*size : (i+1)*size : (i+1)*size]
		p.index[&b[0]] = i
		p.free <- b
	}
	return p
}

// BlockSize returns the size of one block.
func (p *Pool) BlockSize() int {
	return p.size
}

// Cap returns the number of blocks owned by the pool.
func (p *Pool) Cap() int {
	return cap(p.free)
}

// Available returns the number of blocks currently free.
func (p *Pool) Available() int {
	return len(p.free)
}

// TryAcquire returns a block resliced to n bytes without blocking. ok is false
// when every block is in use.
func (p *Pool) TryAcquire(n int) (b []byte, ok bool) {
	p.check(n)
	select {
	case b = <-p.free:
		p.mark(b, true)
		return b[:n], true
	default:
		return nil, false
	}
}

// Acquire returns a block resliced to n bytes, blocking until one is released.
func (p *Pool) Acquire(n int) []byte {
	p.check(n)
	b := <-p.free
	p.mark(b, true)
	return b[:n]
}

// Release hands a block back to the pool. b must come from Acquire or
// TryAcquire on the same pool and be released once.
func (p *Pool) Release(b []byte) {
	if cap(b) != p.size {
		panic("pool: foreign block released")
	}
	b = b[:p.size]
	p.mu.Lock()
	i, ok := p.index[&b[0]]
	if !ok {
		p.mu.Unlock()
		panic("pool: foreign block released")
	}
	if !p.out[i] {
		p.mu.Unlock()
		panic("pool: block released twice")
	}
	p.out[i] = false
	p.mu.Unlock()

	for i := range b {
		b[i] = 0
	}
	p.free <- b
}

func (p *Pool) mark(b []byte, out bool) {
	p.mu.Lock()
	p.out[p.index[&b[0]]] = out
	p.mu.Unlock()
}

func (p *Pool) check(n int) {
	if n <= 0 || n > p.size {
		panic(fmt.Sprintf("pool: size class %d not served by %d-byte blocks", n, p.size))
	}
}
