// Package gpio drives the cube through a chain of shift registers on three
// GPIO lines: serial data, shift clock and latch clock.
//
// Each layer is sent as one select byte with a single bit set for the active
// layer (bit y for layer y, or bit 7-y with the ReverseSelect option for
// boards whose layer drivers are wired top first), followed by one bit per voxel of that layer (rows then columns),
// then the latch clock is pulsed. Bytes go out least significant bit first.
// A frame is scanned several times per DisplayFrame call and the Ditherer
// decides each voxel's bit on every scan.
package gpio

import (
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/warthog618/go-gpiocdev"

	"github.com/matt-g-everett/ledcube/dither"
	"github.com/matt-g-everett/ledcube/stream"
)

var log = charmlog.Default()

// SetLogger replaces the package logger.
func SetLogger(l *charmlog.Logger) {
	log = l
}

// Line is one output line. *gpiocdev.Line satisfies it.
type Line interface {
	SetValue(value int) error
}

// Backend is a stream.Backend writing to the shift registers.
type Backend struct {
	serial Line
	shift  Line
	latch  Line
	closer func() error

	gamma    dither.GammaTable
	ditherer dither.Ditherer
	passes   int

	reverseSelect bool

	writeErrors uint64
}

// Option configures a Backend.
type Option func(*Backend)

// ReverseSelect selects the top layer with bit 0 and the bottom layer with
// bit 7.
func ReverseSelect(reverse bool) Option {
	return func(b *Backend) {
		b.reverseSelect = reverse
	}
}

// New creates a Backend over already opened lines.
func New(serial, shift, latch Line, gamma dither.GammaTable, d dither.Ditherer, passes int, opts ...Option) *Backend {
	b := &Backend{
		serial:   serial,
		shift:    shift,
		latch:    latch,
		gamma:    gamma,
		ditherer: d,
		passes:   passes,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Open requests the configured lines as outputs and builds the gamma table
// and ditherer. Any failure releases what was already requested.
func Open(cfg stream.GPIOConfig) (*Backend, error) {
	gamma, err := dither.NewGammaTable(cfg.Gamma)
	if err != nil {
		return nil, err
	}
	d, err := NewDitherer(cfg.Dither, cfg.NoiseSeed)
	if err != nil {
		return nil, err
	}

	var opened []*gpiocdev.Line
	closeAll := func() error {
		var first error
		for _, l := range opened {
			if err := l.Close(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}

	request := func(name string, offset int) (*gpiocdev.Line, error) {
		l, err := gpiocdev.RequestLine(cfg.Chip, offset, gpiocdev.AsOutput(0), gpiocdev.WithConsumer("ledcube"))
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("request %s line %d on %s: %w", name, offset, cfg.Chip, err)
		}
		log.Debug("requested line", "name", name, "chip", cfg.Chip, "offset", offset)
		opened = append(opened, l)
		return l, nil
	}

	serial, err := request("serial", cfg.Serial)
	if err != nil {
		return nil, err
	}
	shift, err := request("shift", cfg.Shift)
	if err != nil {
		return nil, err
	}
	latch, err := request("latch", cfg.Latch)
	if err != nil {
		return nil, err
	}

	b := New(serial, shift, latch, gamma, d, cfg.Passes, ReverseSelect(cfg.ReverseSelect))
	b.closer = closeAll
	return b, nil
}

// NewDitherer builds the ditherer named by a stream.Dither* mode.
func NewDitherer(mode string, seed uint16) (dither.Ditherer, error) {
	switch mode {
	case stream.DitherDiffusion:
		return dither.NewDiffuser(stream.Size*stream.Size*stream.Size, seed), nil
	case stream.DitherPattern:
		return dither.NewPatterner(), nil
	default:
		return nil, fmt.Errorf("unknown dither mode %q", mode)
	}
}

// DisplayFrame scans f onto the cube passes times.
func (b *Backend) DisplayFrame(f *stream.Frame) {
	for i := 0; i < b.passes; i++ {
		b.scan(f)
		b.ditherer.Advance()
	}
}

// scan sends every layer once, top layer first.
func (b *Backend) scan(f *stream.Frame) {
	for y := stream.Size - 1; y >= 0; y-- {
		b.set(b.latch, false)

		b.outByte(b.selectByte(y))

		layer := f.Layer(uint8(y))
		base := y * stream.Size * stream.Size
		for x, row := range layer {
			for z, brightness := range row {
				idx := base + x*stream.Size + z
				b.pushBit(b.ditherer.Decide(idx, b.gamma.Correct(brightness)))
			}
		}

		b.set(b.latch, true)
	}
}

func (b *Backend) selectByte(y int) uint8 {
	if b.reverseSelect {
		return 1 << uint(stream.Size-1-y)
	}
	return 1 << uint(y)
}

func (b *Backend) outByte(v uint8) {
	for i := 0; i < 8; i++ {
		b.pushBit(v>>uint(i)&1 == 1)
	}
}

func (b *Backend) pushBit(bit bool) {
	b.set(b.shift, false)
	b.set(b.serial, bit)
	b.set(b.shift, true)
}

func (b *Backend) set(l Line, high bool) {
	v := 0
	if high {
		v = 1
	}
	if err := l.SetValue(v); err != nil {
		if b.writeErrors == 0 {
			log.Warn("gpio write failed", "err", err)
		}
		b.writeErrors++
	}
}

// WriteErrors returns how many line writes have failed.
func (b *Backend) WriteErrors() uint64 {
	return b.writeErrors
}

// Close releases the lines.
func (b *Backend) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer()
}
