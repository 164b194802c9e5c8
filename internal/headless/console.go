package headless

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"burnwatch/internal/device"
	"burnwatch/internal/logger"
)

// Console renders watch frames as text. It implements device.FrameSink,
// device.Backlight and device.Haptics.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// New creates a console writing to out.
func New(out io.Writer) *Console {
	return &Console{out: out}
}

// Present prints the text lines of frame.
func (console *Console) Present(frame device.Frame) {
	console.mu.Lock()
	defer console.mu.Unlock()
	fmt.Fprintf(console.out, "--- frame %d ---\n", frame.Seq)
	for _, line := range frame.Lines() {
		fmt.Fprintln(console.out, line)
	}
}

// SetBrightness records the requested backlight level.
func (console *Console) SetBrightness(level float64) {
	logger.Debug("Backlight", "level", level)
}

// Buzz prints a vibration marker.
func (console *Console) Buzz() {
	console.mu.Lock()
	defer console.mu.Unlock()
	fmt.Fprintln(console.out, "*bzzt*")
}

// Commands are the actions reachable from the keyboard.
type Commands struct {
	Press     func(device.Button)
	HeartRate func(float64)
}

// ReadCommands maps input lines to device actions until EOF, "q" or ctx
// cancellation:
//
//	b or empty line  press the main button
//	t                tap the screen
//	h <bpm>          set the simulated heart rate
//	q                quit
func ReadCommands(ctx context.Context, in io.Reader, commands Commands) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		fields := strings.Fields(strings.ToLower(scanner.Text()))
		command := ""
		if len(fields) > 0 {
			command = fields[0]
		}

		switch command {
		case "", "b":
			press(commands, device.ButtonMain)
		case "t":
			press(commands, device.ButtonTouch)
		case "h":
			if len(fields) < 2 || commands.HeartRate == nil {
				continue
			}
			bpm, err := strconv.ParseFloat(fields[1], 64)
			if err != nil || bpm <= 0 {
				logger.Warn("Invalid heart rate", "value", fields[1])
				continue
			}
			commands.HeartRate(bpm)
		case "q":
			return nil
		default:
			logger.Debug("Unknown command", "command", command)
		}
	}
	return scanner.Err()
}

func press(commands Commands, button device.Button) {
	if commands.Press != nil {
		commands.Press(button)
	}
}
