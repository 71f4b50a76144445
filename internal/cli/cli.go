// Package cli holds the plumbing shared by the cartesian commands: the
// common flags, configuration layering and the zap logger.
//
// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"runtime"
	"strconv"
	"unsafe"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lukaszgryglicki/cartesian"
	"github.com/lukaszgryglicki/cartesian/internal/config"
	"github.com/lukaszgryglicki/cartesian/internal/logging"
)

// Common is the state every command shares. Config and Logger are valid
// once the root command's PersistentPreRunE has run.
type Common struct {
	ConfigPath string
	Verbose    bool
	Config     config.Config
	Logger     *zap.Logger

	overrides []override
}

type override struct {
	flag  string
	apply func(*config.Config)
}

// Register adds --config, --verbose and --digits to root and installs the
// setup and teardown hooks.
func (c *Common) Register(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.StringVar(&c.ConfigPath, "config", "", "YAML config file; CARTESIAN_* variables override it")
	pf.BoolVarP(&c.Verbose, "verbose", "v", false, "debug logging")
	c.BindInt(pf, "digits", "significant digits to print; -1 prints the shortest exact form",
		func(cfg *config.Config) *int { return &cfg.Digits })

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error { return c.Setup(cmd) }
	root.PersistentPostRun = func(*cobra.Command, []string) { c.Sync() }
}

// BindInt registers an int flag on fs that, when given, overrides the config
// field chosen by field. The flag default is the config default.
func (c *Common) BindInt(fs *pflag.FlagSet, name, usage string, field func(*config.Config) *int) {
	def := config.Default()
	v := fs.Int(name, *field(&def), usage)
	c.overrides = append(c.overrides, override{
		flag:  name,
		apply: func(cfg *config.Config) { *field(cfg) = *v },
	})
}

// Setup loads the configuration, applies explicitly set flags and builds the
// logger.
func (c *Common) Setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return err
	}
	for _, o := range c.overrides {
		if f := cmd.Flags().Lookup(o.flag); f != nil && f.Changed {
			o.apply(&cfg)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.Config = cfg

	c.Logger, err = logging.New(cfg.LogLevel, c.Verbose)
	if err != nil {
		return err
	}
	c.Logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("file", c.ConfigPath),
		zap.Int("digits", cfg.Digits),
		zap.Int("width", cfg.Width),
		zap.Int("workers", cfg.Workers),
		zap.Int("max_iterations", cfg.MaxIterations))
	return nil
}

// Sync flushes the logger.
func (c *Common) Sync() {
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}

// Workers returns the configured worker count, or GOMAXPROCS when unset.
func (c *Common) Workers() int {
	if c.Config.Workers > 0 {
		return c.Config.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Format renders z with the configured number of significant digits.
func Format[T cartesian.Float](z cartesian.Complex[T], digits int) string {
	if digits < 0 {
		return z.String()
	}
	return fmt.Sprintf("%.*g", max(digits, 1), z)
}

// FormatScalar is Format for a single part.
func FormatScalar[T cartesian.Float](x T, digits int) string {
	if digits < 0 {
		return strconv.FormatFloat(float64(x), 'g', -1, int(unsafe.Sizeof(x))*8)
	}
	return strconv.FormatFloat(float64(x), 'g', max(digits, 1), 64)
}

var printer = message.NewPrinter(language.English)

// Count formats n with digit grouping, e.g. 12,345.
func Count(n int) string { return printer.Sprintf("%d", n) }
