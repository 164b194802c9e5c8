package monitor

import (
	"fmt"

	"burnwatch/internal/device"
)

const (
	idleMessage    = "Press \nButton \nto Start"
	warningTitle   = "WARNING !!"
	warningMessage = "APPROACHING \nMAX BTU!!!"
	dismissHint    = "Tap to dismiss"
)

func (monitor *Monitor) renderIdleLocked() {
	display := monitor.device.Display
	display.Clear()
	display.SetFont(device.DefaultFont, 3)
	display.DrawString(idleMessage, 10, 50)
	display.Flip()
}

// renderLiveLocked draws the cumulative energy over the configured budget.
// The label lines carry leading newlines to sit between the value rows.
func (monitor *Monitor) renderLiveLocked() {
	display := monitor.device.Display
	display.Clear()
	display.SetFont(device.DefaultFont, 2.9)
	display.DrawString("Cumulat. KJ:", 10, 30)
	display.SetFont(device.DefaultFont, 4)
	display.DrawString(fmt.Sprintf("%.2f", monitor.cumulativeKJ), 10, 60)
	display.SetFont(device.DefaultFont, 2.9)
	display.DrawString("\n\n\nMax BTU: \n", 10, 50)
	display.SetFont(device.DefaultFont, 4)
	display.DrawString(fmt.Sprintf("\n\n%.2f\n", monitor.config.BudgetBTU), 10, 50)
	display.Flip()
}

func (monitor *Monitor) renderWarningLocked() {
	display := monitor.device.Display
	display.Clear()
	display.SetFont(device.DefaultFont, 3)
	display.DrawString(warningTitle, 10, 30)
	display.DrawString(warningMessage, 10, 60)
	display.SetFont(device.DefaultFont, 2)
	display.DrawString(dismissHint, 10, 100)
	display.Flip()
}
