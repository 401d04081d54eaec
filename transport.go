package ssd1306

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3/i2c"
)

// ErrClosed is reported to completions of transfers submitted after the
// transport was closed.
var ErrClosed = errors.New("ssd1306: transport closed")

// Op describes one bus transaction. W is written and R is read within a
// single transfer, without a repeated start between the control byte and the
// payload.
type Op struct {
	Addr uint16
	W    []byte
	R    []byte
}

// Completion is invoked once per transfer with the original Op and the bus
// status. It may run on another goroutine.
type Completion func(op Op, err error)

// Transport submits bus transfers without blocking on their completion.
//
// Implementations must run transfers in submission order and invoke done
// exactly once per transfer. Transfer may block to apply backpressure.
type Transport interface {
	Transfer(op Op, done Completion)
}

// SyncTransport runs every transfer inline on the calling goroutine.
type SyncTransport struct {
	Bus i2c.Bus
}

// Transfer implements Transport.
func (t *SyncTransport) Transfer(op Op, done Completion) {
	err := t.Bus.Tx(op.Addr, op.W, op.R)
	if done != nil {
		done(op, err)
	}
}

func (t *SyncTransport) String() string {
	return fmt.Sprintf("ssd1306.SyncTransport{%s}", t.Bus)
}

type request struct {
	op   Op
	done Completion
}

// I2CTransport runs transfers on a dedicated goroutine, in submission order.
//
// At most depth transfers wait in the queue; Transfer blocks once it is full.
type I2CTransport struct {
	bus   i2c.Bus
	queue chan request
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewI2CTransport starts the transfer goroutine for b.
func NewI2CTransport(b i2c.Bus, depth int) *I2CTransport {
	if depth < 0 {
		depth = 0
	}
	t := &I2CTransport{
		bus:   b,
		queue: make(chan request, depth),
	}
	t.wg.Add(1)
	go t.run()
	return t
}

// Transfer implements Transport.
func (t *I2CTransport) Transfer(op Op, done Completion) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		if done != nil {
			done(op, ErrClosed)
		}
		return
	}
	t.queue <- request{op: op, done: done}
}

// Close waits for queued transfers to complete and stops the goroutine. It
// does not close the bus.
func (t *I2CTransport) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	close(t.queue)
	t.mu.Unlock()
	t.wg.Wait()
	return nil
}

func (t *I2CTransport) String() string {
	return fmt.Sprintf("ssd1306.I2CTransport{%s}", t.bus)
}

func (t *I2CTransport) run() {
	defer t.wg.Done()
	for r := range t.queue {
		err := t.bus.Tx(r.op.Addr, r.op.W, r.op.R)
		if r.done != nil {
			r.done(r.op, err)
		}
	}
}
