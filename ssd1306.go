package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/flavioheleno/ssd1306/font"
	"github.com/flavioheleno/ssd1306/internal/pool"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

var errHalted = errors.New("ssd1306: halted")

// DefaultAddr is the I²C address of the controller with D/C pulled low.
// Pulling D/C high selects 0x3D.
const DefaultAddr = 0x3C

const (
	screenWidth  = 64
	screenHeight = 48
	// The 64 visible columns sit in the middle of the 128-column RAM.
	columnOffset = 32
	pageHeight   = 8
	pageCount    = screenHeight / pageHeight
	bufferSize   = screenWidth * screenHeight / 8

	// Command messages are at most a control byte, a command and two
	// arguments.
	cmdBlockSize = 4
	cmdBlocks    = 128
	// queueDepth stays below cmdBlocks so submission blocks before the
	// command pool runs dry.
	queueDepth  = cmdBlocks / 2
	frameBlocks = 2
)

// Color is the drawing color.
type Color uint8

// Possible drawing colors.
const (
	White Color = iota // Lit pixel
	Black              // Dark pixel
)

// Inverse returns the other color.
func (c Color) Inverse() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Mode is the drawing mode.
type Mode uint8

// Possible drawing modes.
const (
	Normal Mode = iota // Overwrite the pixel
	XOR                // Toggle lit pixels; Black is a no-op
)

func (m Mode) String() string {
	if m == XOR {
		return "XOR"
	}
	return "Normal"
}

// State is the controller session state.
type State uint8

// Session states, in lifecycle order.
const (
	Uninitialized State = iota
	Initializing
	Active
	Stopped
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Initializing:
		return "Initializing"
	case Active:
		return "Active"
	case Stopped:
		return "Stopped"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// I²C address (default: DefaultAddr)
	Addr uint16
	// Bus speed set by NewI2C, left untouched when zero. The controller
	// supports up to 400kHz.
	Speed physic.Frequency
	// Selectable fonts (default: font.Builtin())
	Fonts []*font.Font
	// Logger (default: logrus.StandardLogger())
	Logger logrus.FieldLogger
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Addr: DefaultAddr,
}

// Dev is the device handle for the SSD1306 display.
type Dev struct {
	// Communication
	t     Transport
	owned io.Closer // Transport created by NewI2C
	addr  uint16
	log   logrus.FieldLogger

	// Transfer buffers
	cmds   *pool.Pool
	frames *pool.Pool

	// frame is the data marker followed by the pixels; img.Pix aliases
	// frame[1:].
	frame []byte
	img   image1bit.VerticalLSB

	// Text
	fonts   []*font.Font
	font    *font.Font
	fontIdx uint8
	cursorX uint8
	cursorY uint8

	// Drawing attributes
	color Color
	mode  Mode

	state State

	mu  sync.Mutex
	err error
}

// New returns a Dev sending its transfers through t.
//
// The controller is not touched until Start. opts can be nil to use defaults.
func New(t Transport, opts *Opts) (*Dev, error) {
	if t == nil {
		return nil, errors.New("ssd1306: nil transport")
	}
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	if o.Addr == 0 {
		o.Addr = DefaultAddr
	}
	if o.Addr > 0x7F {
		return nil, fmt.Errorf("ssd1306: invalid I²C address 0x%X", o.Addr)
	}
	if o.Fonts == nil {
		o.Fonts = font.Builtin()
	}
	if len(o.Fonts) == 0 || len(o.Fonts) > 255 {
		return nil, fmt.Errorf("ssd1306: invalid font count %d", len(o.Fonts))
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}

	d := &Dev{
		t:      t,
		addr:   o.Addr,
		log:    o.Logger.WithField("dev", fmt.Sprintf("ssd1306@0x%02X", o.Addr)),
		cmds:   pool.New(cmdBlockSize, cmdBlocks),
		frames: pool.New(bufferSize+1, frameBlocks),
		frame:  make([]byte, bufferSize+1),
		fonts:  o.Fonts,
		color:  White,
		mode:   Normal,
	}
	d.frame[0] = i2cData
	d.img = image1bit.VerticalLSB{
		Pix:    d.frame[1:],
		Stride: screenWidth,
		Rect:   image.Rect(0, 0, screenWidth, screenHeight),
	}
	d.SetFont(0)
	return d, nil
}

// NewI2C returns a Dev on bus b. Transfers run on a goroutine owned by the
// Dev and released by Close.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts != nil && opts.Speed != 0 {
		if err := b.SetSpeed(opts.Speed); err != nil {
			return nil, fmt.Errorf("ssd1306: failed to set bus speed: %w", err)
		}
	}
	t := NewI2CTransport(b, queueDepth)
	d, err := New(t, opts)
	if err != nil {
		t.Close()
		return nil, err
	}
	d.owned = t
	return d, nil
}

// Close turns the display off and waits for pending transfers when the
// transport was created by NewI2C.
func (d *Dev) Close() error {
	d.Stop()
	if d.owned != nil {
		if err := d.owned.Close(); err != nil {
			return err
		}
	}
	return d.Err()
}

// State returns the controller session state.
func (d *Dev) State() State {
	return d.state
}

// Err returns the first transfer error reported by the transport, if any.
func (d *Dev) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// ScreenWidth returns the display width in pixels.
func (d *Dev) ScreenWidth() uint8 {
	return screenWidth
}

// ScreenHeight returns the display height in pixels.
func (d *Dev) ScreenHeight() uint8 {
	return screenHeight
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{0x%02X, %dx%d}", d.addr, screenWidth, screenHeight)
}

func (d *Dev) setState(s State) {
	if d.state != s {
		d.log.WithField("state", s).Debug("state change")
	}
	d.state = s
}
