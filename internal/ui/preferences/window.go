package preferences

import (
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"burnwatch/internal/core/model"
)

const (
	genderFemale = "Female"
	genderMale   = "Male"
)

// Window handles the profile editor UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)
	weight   *widget.Entry
	age      *widget.Entry
	gender   *widget.RadioGroup
	budget   *widget.Entry
	interval *widget.Entry
}

// New creates a profile window. Saved values take effect on next launch.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("BurnWatch Profile")

	weight := widget.NewEntry()
	age := widget.NewEntry()
	budget := widget.NewEntry()
	interval := widget.NewEntry()
	gender := widget.NewRadioGroup([]string{genderFemale, genderMale}, nil)
	gender.Horizontal = true

	form := widget.NewForm(
		widget.NewFormItem("Weight (kg)", weight),
		widget.NewFormItem("Age (years)", age),
		widget.NewFormItem("Gender", gender),
		widget.NewFormItem("Budget (BTU)", budget),
		widget.NewFormItem("Update every (s)", interval),
	)

	note := widget.NewLabel("Changes apply the next time BurnWatch starts.")
	note.Wrapping = fyne.TextWrapWord

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, container.NewVBox(form, note))
	window.SetContent(content)
	window.Resize(fyne.NewSize(360, 320))

	prefs := &Window{
		window:   window,
		onSave:   onSave,
		weight:   weight,
		age:      age,
		gender:   gender,
		budget:   budget,
		interval: interval,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the profile window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.weight.SetText(formatFloat(settings.WeightKg))
	prefs.age.SetText(formatFloat(settings.AgeYears))
	prefs.budget.SetText(formatFloat(settings.BudgetBTU))
	prefs.interval.SetText(strconv.Itoa(int(settings.UpdateInterval / time.Second)))
	if settings.Gender == model.GenderMale {
		prefs.gender.SetSelected(genderMale)
	} else {
		prefs.gender.SetSelected(genderFemale)
	}
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if value, ok := parsePositiveFloat(prefs.weight.Text); ok {
		settings.WeightKg = value
	}
	if value, ok := parsePositiveFloat(prefs.age.Text); ok {
		settings.AgeYears = value
	}
	if value, ok := parsePositiveFloat(prefs.budget.Text); ok {
		settings.BudgetBTU = value
	}
	if value, ok := parsePositiveFloat(prefs.interval.Text); ok {
		settings.UpdateInterval = time.Duration(value * float64(time.Second))
	}
	if prefs.gender.Selected == genderMale {
		settings.Gender = model.GenderMale
	} else {
		settings.Gender = model.GenderFemale
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveFloat(value string) (float64, bool) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
