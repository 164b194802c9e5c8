package watchface

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"burnwatch/internal/device"
)

// Config defines the emulated screen.
type Config struct {
	Title string
	// ScreenPixels is the side of the square watch screen in device pixels.
	ScreenPixels int
	// Pixel is the on-desktop size of one device pixel.
	Pixel float32
	// SimulatedBPM shows a heart-rate slider when positive.
	SimulatedBPM float64
}

// DefaultConfig returns a 240x240 screen drawn at 1.5x.
func DefaultConfig() Config {
	return Config{
		Title:        "BurnWatch",
		ScreenPixels: 240,
		Pixel:        1.5,
	}
}

var (
	textColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	buzzColor   = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	bezelColor  = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	screenColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

// Window is a desktop emulation of the wrist device. It implements
// device.FrameSink and device.Backlight, and shows haptic pulses as a
// flashing bezel.
type Window struct {
	window      fyne.Window
	config      Config
	screen      *fyne.Container
	dim         *canvas.Rectangle
	bezel       *canvas.Rectangle
	mainButton  *widget.Button
	touchButton *widget.Button
	hrLabel     *widget.Label
	hrSlider    *widget.Slider
	onPress     func(device.Button)
	onHeartRate func(float64)
}

// New creates the emulator window.
func New(app fyne.App, config Config) *Window {
	if config.ScreenPixels <= 0 {
		config.ScreenPixels = DefaultConfig().ScreenPixels
	}
	if config.Pixel <= 0 {
		config.Pixel = DefaultConfig().Pixel
	}

	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	side := float32(config.ScreenPixels) * config.Pixel
	background := canvas.NewRectangle(screenColor)
	background.SetMinSize(fyne.NewSize(side, side))
	screen := container.NewWithoutLayout()
	dim := canvas.NewRectangle(color.NRGBA{A: brightnessToAlpha(0.1)})
	bezel := canvas.NewRectangle(color.Transparent)
	bezel.StrokeColor = bezelColor
	bezel.StrokeWidth = 6

	face := &Window{
		window: window,
		config: config,
		screen: screen,
		dim:    dim,
		bezel:  bezel,
	}

	face.mainButton = widget.NewButton(string(device.ButtonMain), func() {
		face.press(device.ButtonMain)
	})
	face.touchButton = widget.NewButton("Tap screen", func() {
		face.press(device.ButtonTouch)
	})

	display := container.NewStack(background, screen, dim, bezel)
	controls := container.NewHBox(face.touchButton, face.mainButton)
	content := container.NewVBox(container.NewCenter(display), controls)

	if config.SimulatedBPM > 0 {
		face.hrLabel = widget.NewLabel("")
		face.hrSlider = widget.NewSlider(40, 200)
		face.hrSlider.Step = 1
		face.hrSlider.SetValue(config.SimulatedBPM)
		face.setHeartRateLabel(config.SimulatedBPM)
		face.hrSlider.OnChanged = func(value float64) {
			face.setHeartRateLabel(value)
			if face.onHeartRate != nil {
				face.onHeartRate(value)
			}
		}
		content.Add(container.NewBorder(nil, nil, face.hrLabel, nil, face.hrSlider))
	}

	window.SetContent(content)
	window.SetFixedSize(true)
	return face
}

// SetOnPress sets the button handler.
func (face *Window) SetOnPress(handler func(device.Button)) {
	face.onPress = handler
}

// SetOnHeartRate sets the simulated heart-rate slider handler.
func (face *Window) SetOnHeartRate(handler func(float64)) {
	face.onHeartRate = handler
}

// SetCloseIntercept replaces the default close behaviour.
func (face *Window) SetCloseIntercept(handler func()) {
	face.window.SetCloseIntercept(handler)
}

// Show displays the emulator.
func (face *Window) Show() {
	face.window.Show()
}

// Hide hides the emulator.
func (face *Window) Hide() {
	face.window.Hide()
}

// Present redraws the screen with frame.
func (face *Window) Present(frame device.Frame) {
	lines := layoutFrame(frame, face.config.Pixel)
	fyne.Do(func() {
		objects := make([]fyne.CanvasObject, 0, len(lines))
		for _, line := range lines {
			text := canvas.NewText(line.Text, textColor)
			text.TextStyle = fyne.TextStyle{Monospace: true}
			text.TextSize = line.Size
			text.Move(fyne.NewPos(line.X, line.Y))
			text.Resize(text.MinSize())
			objects = append(objects, text)
		}
		face.screen.Objects = objects
		face.screen.Refresh()
	})
}

// SetBrightness dims the screen.
func (face *Window) SetBrightness(level float64) {
	alpha := brightnessToAlpha(level)
	fyne.Do(func() {
		face.dim.FillColor = color.NRGBA{A: alpha}
		face.dim.Refresh()
	})
}

// SetBuzzing flashes the bezel while the motor is on.
func (face *Window) SetBuzzing(active bool) {
	fyne.Do(func() {
		if active {
			face.bezel.StrokeColor = buzzColor
		} else {
			face.bezel.StrokeColor = bezelColor
		}
		face.bezel.Refresh()
	})
}

func (face *Window) press(button device.Button) {
	if face.onPress != nil {
		face.onPress(button)
	}
}

func (face *Window) setHeartRateLabel(bpm float64) {
	face.hrLabel.SetText(fmt.Sprintf("HR %3.0f bpm", bpm))
}
