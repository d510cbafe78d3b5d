package system

// Logger is the logging surface used by the console helpers.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Console prepares the text console for framebuffer output and undoes it on Restore.
// Every step is best-effort: failures are logged and the next step still runs.
type Console struct {
	Logger Logger

	graphics bool
	hidden   bool
}

func (c *Console) Enter() {
	c.graphics = c.step(SetGraphicsMode(), "KD_GRAPHICS set", "KD_GRAPHICS failed")
	c.hidden = c.step(HideCursor(), "cursor hidden", "hide cursor failed")
}

// Restore undoes only the steps that succeeded in Enter.
func (c *Console) Restore() {
	if c.hidden {
		c.step(ShowCursor(), "cursor shown", "show cursor failed")
		c.hidden = false
	}
	if c.graphics {
		c.step(RestoreTextMode(), "KD_TEXT set", "KD_TEXT failed")
		c.graphics = false
	}
}

func (c *Console) step(err error, ok, failed string) bool {
	if c.Logger == nil {
		return err == nil
	}
	if err != nil {
		c.Logger.Errorf("tty", "%s: %v", failed, err)
		return false
	}
	c.Logger.Infof("tty", "%s", ok)
	return true
}
