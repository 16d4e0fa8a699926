package system

// Logger is the component logger used for console changes.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Console tracks the console changes made for a fullscreen framebuffer app so
// they can be undone on exit. Failures are logged and otherwise ignored.
type Console struct {
	Logger   Logger
	graphics bool
	hidden   bool
}

// Acquire hides the cursor and switches the console to graphics mode.
func (c *Console) Acquire() {
	if err := HideCursor(); err != nil {
		c.errorf("hide cursor failed: %v", err)
	} else {
		c.hidden = true
		c.infof("cursor hidden")
	}
	if err := SetGraphicsMode(); err != nil {
		c.errorf("KD_GRAPHICS failed: %v", err)
	} else {
		c.graphics = true
		c.infof("KD_GRAPHICS set")
	}
}

// Release restores whatever Acquire changed.
func (c *Console) Release() {
	if c.graphics {
		if err := RestoreTextMode(); err != nil {
			c.errorf("KD_TEXT failed: %v", err)
		} else {
			c.infof("KD_TEXT set")
		}
		c.graphics = false
	}
	if c.hidden {
		if err := ShowCursor(); err != nil {
			c.errorf("show cursor failed: %v", err)
		} else {
			c.infof("cursor shown")
		}
		c.hidden = false
	}
}

func (c *Console) infof(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Infof("tty", format, args...)
	}
}

func (c *Console) errorf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Errorf("tty", format, args...)
	}
}
