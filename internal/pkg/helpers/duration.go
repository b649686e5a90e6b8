package helpers

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses s, falling back to def when s is empty, malformed or negative.
func ParseDuration(s string, def time.Duration) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		log.Warn().Str("value", s).Dur("fallback", def).Msg("Ignoring invalid duration")
		return def
	}
	return d
}
