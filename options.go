package usas

import (
	"go.uber.org/zap"
)

// Option configures a corpus parser.
type Option func(*config)

type config struct {
	validation map[string]struct{}
	filter     map[string]struct{}
	workers    int
	logger     *zap.Logger
}

func defaultConfig() config {
	return config{
		workers: 1,
		logger:  zap.NewNop(),
	}
}

func toSet(tags []string) map[string]struct{} {
	if tags == nil {
		return nil
	}
	s := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// WithTagValidation supplies the set of allowed tag codes. Every sub-tag of
// a token's semantic tag string must be a member; "PUNCT" and empty strings
// are exempt (default: no validation).
func WithTagValidation(tags []string) Option {
	return func(c *config) {
		c.validation = toSet(tags)
	}
}

// WithTagFilter supplies tag strings to suppress. A token whose full joined
// tag string is a member gets an empty semantic tag instead, and the empty
// string is then exempt from validation. Multi-tag strings must match in
// full: filtering "F2" does not touch "F2/O2" (default: no filtering).
func WithTagFilter(tags []string) Option {
	return func(c *config) {
		c.filter = toSet(tags)
	}
}

// WithWorkers sets how many lines are validated concurrently. Output order
// and failure behavior are identical to sequential parsing; only the
// line-oriented Benedict parsers use it (default: 1).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets the logger (default: zap.NewNop()).
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
