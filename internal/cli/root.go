package cli

import (
	"io"

	"burnwatch/internal/storage"
	"burnwatch/internal/ui/preferences"
)

// AppName names the single-instance lock, the config directory and windows.
const AppName = "BurnWatch"

// Context carries global flags to every command.
type Context struct {
	ConfigDir string
	Debug     bool
	Out       io.Writer
	In        io.Reader
}

// LoadSettings reads the wearer profile from the config directory.
func (c *Context) LoadSettings() (preferences.Settings, error) {
	return storage.LoadSettings(c.ConfigDir)
}
