package ssd1306

import (
	"fmt"

	"github.com/flavioheleno/ssd1306/internal/pool"
	"github.com/sirupsen/logrus"
)

// Control bytes leading every I²C message. The controller does not accept a
// repeated start between the control byte and its payload, so both always go
// in one transfer.
const (
	i2cCmd  = 0x00 // Command register
	i2cData = 0x40 // Stream of data bytes
)

// command sends cmd followed by at most two arguments as a single message.
func (d *Dev) command(cmd byte, args ...byte) {
	if len(args) > 2 {
		panic(fmt.Sprintf("ssd1306: command 0x%02X takes at most 2 arguments, got %d", cmd, len(args)))
	}
	b := d.acquire(2 + len(args))
	b[0] = i2cCmd
	b[1] = cmd
	copy(b[2:], args)
	d.log.WithFields(logrus.Fields{"cmd": fmt.Sprintf("%#02x", cmd), "args": fmt.Sprintf("% x", args)}).Debug("command")
	d.send(b, d.cmds)
}

// data sends a single data byte.
func (d *Dev) data(b byte) {
	m := d.acquire(2)
	m[0] = i2cData
	m[1] = b
	d.send(m, d.cmds)
}

func (d *Dev) acquire(n int) []byte {
	b, ok := d.cmds.TryAcquire(n)
	if !ok {
		panic("ssd1306: transfer buffer pool exhausted")
	}
	return b
}

// send submits b and hands it back to p once the transport is done with it.
// Failures are logged and remembered, never retried.
func (d *Dev) send(b []byte, p *pool.Pool) {
	d.t.Transfer(Op{Addr: d.addr, W: b}, func(op Op, err error) {
		if err != nil {
			d.fail(op, err)
		}
		p.Release(op.W)
	})
}

func (d *Dev) fail(op Op, err error) {
	d.log.WithError(err).WithField("len", len(op.W)).Warn("transfer failed")
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err == nil {
		d.err = fmt.Errorf("ssd1306: transfer to 0x%02X failed: %w", op.Addr, err)
	}
}
