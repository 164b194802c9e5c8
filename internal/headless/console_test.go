package headless

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burnwatch/internal/device"
)

func TestConsolePresentsFrameLines(t *testing.T) {
	var out bytes.Buffer
	console := New(&out)

	buffer := device.NewFramebuffer(console)
	buffer.Clear()
	buffer.SetFont(device.DefaultFont, 3)
	buffer.DrawString("Hello\n\n  world", 10, 20)
	buffer.Flip()
	console.Buzz()

	text := out.String()
	assert.Contains(t, text, "--- frame 1 ---\n")
	assert.Contains(t, text, "Hello\nworld\n")
	assert.True(t, strings.HasSuffix(text, "*bzzt*\n"))
}

func TestReadCommands(t *testing.T) {
	var pressed []device.Button
	var rates []float64
	input := strings.NewReader("b\n\nt\nh 120\nh nope\nx\nq\nb\n")

	err := ReadCommands(context.Background(), input, Commands{
		Press:     func(button device.Button) { pressed = append(pressed, button) },
		HeartRate: func(bpm float64) { rates = append(rates, bpm) },
	})
	require.NoError(t, err)

	assert.Equal(t, []device.Button{device.ButtonMain, device.ButtonMain, device.ButtonTouch}, pressed)
	assert.Equal(t, []float64{120}, rates)
}

func TestReadCommandsStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var pressed int
	err := ReadCommands(ctx, strings.NewReader("b\nb\n"), Commands{
		Press: func(device.Button) { pressed++ },
	})
	require.NoError(t, err)
	assert.Zero(t, pressed)
}
