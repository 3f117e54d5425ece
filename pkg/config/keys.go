package config

import (
	"maps"
	"slices"
	"strconv"
	"time"

	cerrors "github.com/matzehuels/curricula/pkg/errors"
)

type field struct {
	get func(*Config) string
	set func(*Config, string) error
}

func stringField(p func(*Config) *string) field {
	return field{
		get: func(c *Config) string { return *p(c) },
		set: func(c *Config, v string) error { *p(c) = v; return nil },
	}
}

func floatField(p func(*Config) *float64) field {
	return field{
		get: func(c *Config) string { return strconv.FormatFloat(*p(c), 'f', -1, 64) },
		set: func(c *Config, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return err
			}
			*p(c) = f
			return nil
		},
	}
}

func intField(p func(*Config) *int) field {
	return field{
		get: func(c *Config) string { return strconv.Itoa(*p(c)) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			*p(c) = n
			return nil
		},
	}
}

var fields = map[string]field{
	"logging.level": stringField(func(c *Config) *string { return &c.Logging.Level }),
	"logging.file":  stringField(func(c *Config) *string { return &c.Logging.File }),
	"logging.verbose": {
		get: func(c *Config) string { return strconv.FormatBool(c.Logging.Verbose) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return err
			}
			c.Logging.Verbose = b
			return nil
		},
	},
	"scheduler.target_credits": floatField(func(c *Config) *float64 { return &c.Scheduler.TargetCredits }),
	"scheduler.max_credits":    floatField(func(c *Config) *float64 { return &c.Scheduler.MaxCredits }),
	"scheduler.semester_terms": intField(func(c *Config) *int { return &c.Scheduler.SemesterTerms }),
	"scheduler.quarter_terms":  intField(func(c *Config) *int { return &c.Scheduler.QuarterTerms }),
	"paths.metrics_dir":        stringField(func(c *Config) *string { return &c.Paths.MetricsDir }),
	"paths.reports_dir":        stringField(func(c *Config) *string { return &c.Paths.ReportsDir }),
	"analysis.centrality_timeout": {
		get: func(c *Config) string { return c.Analysis.CentralityTimeout.String() },
		set: func(c *Config, v string) error {
			d, err := time.ParseDuration(v)
			if err != nil {
				return err
			}
			c.Analysis.CentralityTimeout = Duration{d}
			return nil
		},
	},
	"server.addr": stringField(func(c *Config) *string { return &c.Server.Addr }),
}

// Keys lists every dotted key accepted by [Config.Get] and [Config.Set].
func Keys() []string {
	return slices.Sorted(maps.Keys(fields))
}

// Get returns the value at a dotted key such as "server.addr".
func (c *Config) Get(key string) (string, error) {
	f, ok := fields[key]
	if !ok {
		return "", cerrors.New(cerrors.ErrCodeNotFound, "unknown config key %q", key)
	}
	return f.get(c), nil
}

// Set parses value into the field at a dotted key. The result is validated
// and c is left unchanged when parsing or validation fails.
func (c *Config) Set(key, value string) error {
	f, ok := fields[key]
	if !ok {
		return cerrors.New(cerrors.ErrCodeNotFound, "unknown config key %q", key)
	}
	next := *c
	if err := f.set(&next, value); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "%s", key)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Unset restores the field at a dotted key to its default value. Like
// [Config.Set], c is left unchanged when the result does not validate.
func (c *Config) Unset(key string) error {
	d := Defaults()
	def, err := d.Get(key)
	if err != nil {
		return err
	}
	return c.Set(key, def)
}
