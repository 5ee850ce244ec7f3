package config

import (
	"time"

	"github.com/abhisek/spellit/internal/words"
)

// Config is the root application configuration.
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Log      LogConfig      `yaml:"log"`
	Practice PracticeConfig `yaml:"practice"`
}

// StoreConfig holds database settings.
type StoreConfig struct {
	// Path is the SQLite file. Empty means the default data directory.
	Path string `yaml:"path" env:"SPELLIT_DB"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"SPELLIT_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"SPELLIT_LOG_FORMAT" env-default:"text"`
	// File receives log output; empty means spellit.log in the data
	// directory, "-" disables logging.
	File string `yaml:"file" env:"SPELLIT_LOG_FILE"`
}

// PracticeConfig tunes the spelling game.
type PracticeConfig struct {
	AdvanceDelay time.Duration `yaml:"advance_delay" env:"SPELLIT_ADVANCE_DELAY" env-default:"800ms"`
	Delimiter    string        `yaml:"delimiter"     env:"SPELLIT_DELIMITER"     env-default:"-"`

	// DefaultWords replaces the built-in list used when nothing is stored.
	DefaultWords []WordConfig `yaml:"default_words"`
}

// WordConfig is one default word in the config file.
type WordConfig struct {
	Key         string `yaml:"key"`
	Translation string `yaml:"translation"`
}

// Defaults returns the configured default list, or the built-in one.
func (p PracticeConfig) Defaults() []words.Entry {
	if len(p.DefaultWords) == 0 {
		return words.Defaults()
	}
	out := make([]words.Entry, 0, len(p.DefaultWords))
	for _, w := range p.DefaultWords {
		out = append(out, words.NewEntry(w.Key, w.Translation))
	}
	return out
}
