package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/taskdeck/taskdeck/internal/logging"
)

// ValidationErrors collects configuration problems found during Load.
type ValidationErrors []string

// Error returns the joined validation messages.
func (v ValidationErrors) Error() string {
	return fmt.Sprintf("invalid configuration: %s", strings.Join(v, "; "))
}

// validLogLevels are the accepted logging.level values, keyed lowercase.
var validLogLevels = func() map[string]bool {
	levels := make(map[string]bool)
	for _, level := range logging.ValidLevels() {
		levels[strings.ToLower(level)] = true
	}
	return levels
}()

// Validate checks the configuration for values that would break the console
// at runtime. It returns one message per problem rather than stopping at the
// first, so a bad config file can be fixed in a single pass.
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.BaseURL == "" {
		errs = append(errs, "server.base_url must not be empty")
	} else {
		u, err := url.Parse(c.Server.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("server.base_url %q is not a valid URL", c.Server.BaseURL))
		}
	}

	if c.Server.TimeoutSeconds <= 0 {
		errs = append(errs, "server.timeout_seconds must be positive")
	}

	if c.TUI.RecentTasks < 1 {
		errs = append(errs, "tui.recent_tasks must be at least 1")
	}

	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("logging.level %q is not one of %s",
			c.Logging.Level, strings.ToLower(strings.Join(logging.ValidLevels(), ", "))))
	}

	return errs
}
