package config

import (
	"fmt"
	"strings"
)

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}

	if c.Practice.AdvanceDelay < 0 {
		return fmt.Errorf("practice.advance_delay must be >= 0 (got %v)", c.Practice.AdvanceDelay)
	}
	if c.Practice.Delimiter == "" || strings.ContainsAny(c.Practice.Delimiter, "\r\n") {
		return fmt.Errorf("practice.delimiter must be a non-empty single-line string")
	}

	for i, w := range c.Practice.DefaultWords {
		if strings.TrimSpace(w.Key) == "" || strings.TrimSpace(w.Translation) == "" {
			return fmt.Errorf("practice.default_words[%d]: key and translation are required", i)
		}
	}

	return nil
}
