package engine

import "github.com/pkg/errors"

// Config is supplied once at startup and never changes afterwards.
type Config struct {
	Title                string
	Width, Height        int
	WaitVerticalBlanking bool
}

func DefaultConfig() Config {
	return Config{
		Title:  "Game",
		Width:  600,
		Height: 800,
	}
}

func (c Config) Validate() error {
	if c.Title == "" {
		return errors.New("config: empty title")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("config: invalid window size %dx%d", c.Width, c.Height)
	}
	return nil
}
