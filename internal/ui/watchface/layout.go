package watchface

import (
	"strings"

	"burnwatch/internal/device"
)

// glyphHeight is the pixel height of the 6x8 font at scale 1.
const glyphHeight = 8

// placedLine is one line of text positioned on the watch screen.
type placedLine struct {
	Text string
	X    float32
	Y    float32
	Size float32
}

// layoutFrame expands the text operations of a frame into screen lines.
// A newline moves down by one glyph row at the op's scale and returns to x.
func layoutFrame(frame device.Frame, pixel float32) []placedLine {
	var lines []placedLine
	for _, op := range frame.Ops {
		scale := float32(op.Scale)
		if scale <= 0 {
			scale = 1
		}
		rowHeight := glyphHeight * scale * pixel
		for row, text := range strings.Split(op.Text, "\n") {
			if strings.TrimSpace(text) == "" {
				continue
			}
			lines = append(lines, placedLine{
				Text: text,
				X:    float32(op.X) * pixel,
				Y:    float32(op.Y)*pixel + float32(row)*rowHeight,
				Size: rowHeight,
			})
		}
	}
	return lines
}

// brightnessToAlpha returns the alpha of the black dimming layer.
func brightnessToAlpha(level float64) uint8 {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	return uint8((1 - level) * 255)
}
