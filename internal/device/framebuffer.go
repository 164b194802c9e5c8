package device

import (
	"strings"
	"sync"
)

// DefaultFont is the bitmap font of the watch firmware.
const DefaultFont = "6x8"

// TextOp is one DrawString call captured in a frame.
type TextOp struct {
	Text  string
	X     int
	Y     int
	Font  string
	Scale float64
}

// Frame is a committed screen image.
type Frame struct {
	Seq uint64
	Ops []TextOp
}

// Lines returns the visible text lines of the frame in draw order.
func (frame Frame) Lines() []string {
	var lines []string
	for _, op := range frame.Ops {
		for _, line := range strings.Split(op.Text, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines
}

// Contains reports whether any visible line equals text.
func (frame Frame) Contains(text string) bool {
	for _, line := range frame.Lines() {
		if line == text {
			return true
		}
	}
	return false
}

// FrameSink receives every flipped frame.
type FrameSink interface {
	Present(frame Frame)
}

// Framebuffer implements Display by collecting text operations and
// publishing them as a Frame on Flip.
type Framebuffer struct {
	mu      sync.Mutex
	font    string
	scale   float64
	pending []TextOp
	last    Frame
	seq     uint64
	sinks   []FrameSink
}

// NewFramebuffer creates a framebuffer publishing to sinks.
func NewFramebuffer(sinks ...FrameSink) *Framebuffer {
	return &Framebuffer{
		font:  DefaultFont,
		scale: 1,
		sinks: sinks,
	}
}

// AddSink registers another frame consumer.
func (buffer *Framebuffer) AddSink(sink FrameSink) {
	buffer.mu.Lock()
	buffer.sinks = append(buffer.sinks, sink)
	buffer.mu.Unlock()
}

// Clear discards the pending frame.
func (buffer *Framebuffer) Clear() {
	buffer.mu.Lock()
	buffer.pending = nil
	buffer.mu.Unlock()
}

// SetFont selects the font for subsequent DrawString calls.
func (buffer *Framebuffer) SetFont(family string, scale float64) {
	buffer.mu.Lock()
	buffer.font = family
	buffer.scale = scale
	buffer.mu.Unlock()
}

// DrawString adds text at (x, y). A newline starts a new line below x.
func (buffer *Framebuffer) DrawString(text string, x, y int) {
	buffer.mu.Lock()
	buffer.pending = append(buffer.pending, TextOp{
		Text:  text,
		X:     x,
		Y:     y,
		Font:  buffer.font,
		Scale: buffer.scale,
	})
	buffer.mu.Unlock()
}

// Flip commits the pending frame and hands it to every sink.
func (buffer *Framebuffer) Flip() {
	buffer.mu.Lock()
	buffer.seq++
	frame := Frame{
		Seq: buffer.seq,
		Ops: append([]TextOp(nil), buffer.pending...),
	}
	buffer.last = frame
	sinks := append([]FrameSink(nil), buffer.sinks...)
	buffer.mu.Unlock()

	for _, sink := range sinks {
		sink.Present(frame)
	}
}

// Last returns the most recently flipped frame.
func (buffer *Framebuffer) Last() Frame {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()
	return buffer.last
}
