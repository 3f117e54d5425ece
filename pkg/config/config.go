// Package config loads and saves the curricula configuration file.
//
// The file lives at $XDG_CONFIG_HOME/curricula/config.toml, falling back to
// ~/.config/curricula/config.toml. Every field has a default, so a missing
// file is not an error for [LoadOrDefault]. Individual values can be read and
// written by dotted key ("scheduler.target_credits") with [Config.Get] and
// [Config.Set], which back the `curricula config get|set` commands.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	cerrors "github.com/matzehuels/curricula/pkg/errors"
	"github.com/matzehuels/curricula/pkg/schedule"
)

const (
	appName  = "curricula"
	fileName = "config.toml"

	DefaultLevel             = "info"
	DefaultAddr              = ":8080"
	DefaultCentralityTimeout = 30 * time.Second
)

// Config is the on-disk configuration.
type Config struct {
	Logging   Logging   `toml:"logging"`
	Scheduler Scheduler `toml:"scheduler"`
	Paths     Paths     `toml:"paths"`
	Analysis  Analysis  `toml:"analysis"`
	Server    Server    `toml:"server"`
}

type Logging struct {
	Level   string `toml:"level"`
	File    string `toml:"file"`
	Verbose bool   `toml:"verbose"`
}

// Scheduler holds term scheduling defaults. A zero MaxCredits is derived
// from the target and the calendar system.
type Scheduler struct {
	TargetCredits float64 `toml:"target_credits"`
	MaxCredits    float64 `toml:"max_credits"`
	SemesterTerms int     `toml:"semester_terms"`
	QuarterTerms  int     `toml:"quarter_terms"`
}

type Paths struct {
	MetricsDir string `toml:"metrics_dir"`
	ReportsDir string `toml:"reports_dir"`
}

// Analysis bounds how long a caller waits for metrics.
type Analysis struct {
	CentralityTimeout Duration `toml:"centrality_timeout"`
}

type Server struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration written as a string such as "30s".
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Logging: Logging{Level: DefaultLevel},
		Scheduler: Scheduler{
			TargetCredits: schedule.DefaultSemesterCredits,
			SemesterTerms: schedule.SemesterTerms,
			QuarterTerms:  schedule.QuarterTerms,
		},
		Paths:    Paths{MetricsDir: "metrics", ReportsDir: "reports"},
		Analysis: Analysis{CentralityTimeout: Duration{DefaultCentralityTimeout}},
		Server:   Server{Addr: DefaultAddr},
	}
}

// Dir returns the configuration directory using the XDG standard
// (~/.config/curricula/).
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Path returns the configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the file at path. Unknown keys and invalid values are rejected.
// Fields the file leaves out stay zero; see [Config.MergeDefaults].
func Load(path string) (Config, error) {
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, cerrors.Wrap(cerrors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return c, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return c, cerrors.New(cerrors.ErrCodeInvalidConfig, "unknown key %q in %s", undecoded[0].String(), path)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// LoadOrDefault loads the file at the default path, filling unset fields
// from [Defaults]. A missing file yields the defaults.
func LoadOrDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Defaults(), nil
	}
	return LoadFileOrDefault(path)
}

// LoadFileOrDefault is [LoadOrDefault] for an explicit path.
func LoadFileOrDefault(path string) (Config, error) {
	c, err := Load(path)
	if cerrors.Is(err, cerrors.ErrCodeFileNotFound) {
		return Defaults(), nil
	}
	if err != nil {
		return Config{}, err
	}
	c.MergeDefaults(Defaults())
	return c, nil
}

// Save writes c to path, creating parent directories.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}

// Reset overwrites the file at path with the defaults.
func Reset(path string) error {
	return Defaults().Save(path)
}

// MergeDefaults fills every zero field of c from d and reports whether
// anything changed. Boolean fields are left alone.
func (c *Config) MergeDefaults(d Config) bool {
	changed := false
	str := func(dst *string, v string) {
		if *dst == "" && v != "" {
			*dst, changed = v, true
		}
	}
	num := func(dst *float64, v float64) {
		if *dst == 0 && v != 0 {
			*dst, changed = v, true
		}
	}
	count := func(dst *int, v int) {
		if *dst == 0 && v != 0 {
			*dst, changed = v, true
		}
	}

	str(&c.Logging.Level, d.Logging.Level)
	str(&c.Logging.File, d.Logging.File)
	num(&c.Scheduler.TargetCredits, d.Scheduler.TargetCredits)
	num(&c.Scheduler.MaxCredits, d.Scheduler.MaxCredits)
	count(&c.Scheduler.SemesterTerms, d.Scheduler.SemesterTerms)
	count(&c.Scheduler.QuarterTerms, d.Scheduler.QuarterTerms)
	str(&c.Paths.MetricsDir, d.Paths.MetricsDir)
	str(&c.Paths.ReportsDir, d.Paths.ReportsDir)
	if c.Analysis.CentralityTimeout.Duration == 0 && d.Analysis.CentralityTimeout.Duration != 0 {
		c.Analysis.CentralityTimeout, changed = d.Analysis.CentralityTimeout, true
	}
	str(&c.Server.Addr, d.Server.Addr)
	return changed
}

// Overrides carries command-line values that take precedence over the file.
// Nil fields are ignored.
type Overrides struct {
	Verbose       *bool
	TargetCredits *float64
	Timeout       *time.Duration
	Addr          *string
}

// Apply copies every non-nil override into c.
func (c *Config) Apply(o Overrides) {
	if o.Verbose != nil {
		c.Logging.Verbose = *o.Verbose
	}
	if o.TargetCredits != nil {
		c.Scheduler.TargetCredits = *o.TargetCredits
	}
	if o.Timeout != nil {
		c.Analysis.CentralityTimeout = Duration{*o.Timeout}
	}
	if o.Addr != nil {
		c.Server.Addr = *o.Addr
	}
}

// Validate reports the first invalid value as an INVALID_CONFIG error.
func (c Config) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "logging.level %q is not one of debug, info, warn or error", c.Logging.Level)
	}
	s := c.Scheduler
	if s.TargetCredits < 0 || s.MaxCredits < 0 {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "scheduler credits must not be negative")
	}
	if s.MaxCredits > 0 && s.MaxCredits < s.TargetCredits {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "scheduler.max_credits %.1f is below target_credits %.1f", s.MaxCredits, s.TargetCredits)
	}
	if s.SemesterTerms < 0 || s.QuarterTerms < 0 {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "scheduler term counts must not be negative")
	}
	if c.Analysis.CentralityTimeout.Duration < 0 {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "analysis.centrality_timeout must not be negative")
	}
	return nil
}

// ScheduleConfig derives the scheduler configuration for a calendar system.
// A positive target overrides the configured one.
func (c Config) ScheduleConfig(quarter bool, target float64) schedule.Config {
	if target <= 0 {
		target = c.Scheduler.TargetCredits
	}
	cfg := schedule.ForSystem(quarter, target)
	if c.Scheduler.MaxCredits >= cfg.TargetCredits {
		cfg.MaxCredits = c.Scheduler.MaxCredits
	}
	if quarter && c.Scheduler.QuarterTerms > 0 {
		cfg.Terms = c.Scheduler.QuarterTerms
	} else if !quarter && c.Scheduler.SemesterTerms > 0 {
		cfg.Terms = c.Scheduler.SemesterTerms
	}
	return cfg
}
