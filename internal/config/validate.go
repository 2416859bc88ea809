package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/heartmarshall/liushu-pinyin/internal/domain"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the loaded configuration. Load calls it automatically.
// Format and order values are normalized to lower case.
func (c *Config) Validate() error {
	var errs []domain.FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level) {
		add("log.level", "must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Format != "json" && c.Log.Format != "text" {
		add("log.format", "must be json or text (got %q)", c.Log.Format)
	}

	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format != "rust" && c.Output.Format != "go" {
		add("output.format", "must be rust or go (got %q)", c.Output.Format)
	}
	c.Output.Order = strings.ToLower(strings.TrimSpace(c.Output.Order))
	if c.Output.Order != OrderSorted && c.Output.Order != OrderSet {
		add("output.order", "must be %s or %s (got %q)", OrderSorted, OrderSet, c.Output.Order)
	}
	if !identRe.MatchString(c.Output.Name) {
		add("output.name", "must be an identifier (got %q)", c.Output.Name)
	}
	if c.Output.Format == "go" && !identRe.MatchString(c.Output.Package) {
		add("output.package", "must be an identifier (got %q)", c.Output.Package)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
