package config

import (
	"time"

	"github.com/ziadkadry99/ddo-deck/internal/deck"
)

// DefaultPath is the configuration file looked up in the working directory.
const DefaultPath = ".ddodeck.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:       "",
		OutputDir:   "site",
		Port:        8080,
		LogLevel:    LevelInfo,
		NarrowWidth: deck.DefaultNarrowWidth,
		RevealRatio: deck.DefaultRevealRatio,
		Timers: TimerConfig{
			PomInfo:     int(deck.DefaultInfoHide / time.Millisecond),
			PomBehavior: int(deck.DefaultBehaviorHide / time.Millisecond),
			Reveal:      int(deck.DefaultRevealDelay / time.Millisecond),
		},
		Export: ExportConfig{
			Formats: []string{"svg"},
			Include: []string{"**"},
		},
	}
}

// DeckOptions converts the viewport and timer settings for the controllers.
func (c *Config) DeckOptions() deck.Options {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	return deck.Options{
		NarrowWidth:  c.NarrowWidth,
		RevealRatio:  c.RevealRatio,
		RevealDelay:  ms(c.Timers.Reveal),
		InfoHide:     ms(c.Timers.PomInfo),
		BehaviorHide: ms(c.Timers.PomBehavior),
	}
}
