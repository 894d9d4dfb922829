// Package config loads evcal settings with viper.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/evcal/pkg/app"
	"tableflip.dev/evcal/pkg/group"
	"tableflip.dev/evcal/pkg/log"
)

const (
	keyGroups        = "groups"
	keyFallbackColor = "fallback_color"
	keyOrphans       = "orphans"
	keyRefresh       = "refresh"
	keyLogLevel      = "log.level"
	keyLogFile       = "log.file"
)

// Config is the resolved configuration.
type Config struct {
	// Groups seeds the group list at startup.
	Groups        []group.Group
	FallbackColor string
	Orphans       app.OrphanPolicy
	// Refresh is a cron schedule for re-reading the clock in the UI so the
	// today marker rolls over.
	Refresh  string
	LogLevel log.Level
	LogFile  string
	// File is the config file in use, empty when running on defaults.
	File string
}

// Load reads .evcal.yaml from $EVCAL_CONFIG_PATH, the working directory or
// the home directory. A missing file is not an error. Every key can be
// overridden with an EVCAL_ environment variable.
func Load() (*Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom resolves the configuration using the provided viper instance.
func LoadFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetConfigName(".evcal") // .yaml is implicit
	v.SetEnvPrefix("EVCAL")
	v.AutomaticEnv()

	if override := os.Getenv("EVCAL_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}
	return decode(v)
}

// Watch calls onChange with the reloaded configuration whenever the config
// file in use changes on disk. It is a no-op when no file was loaded.
func Watch(v *viper.Viper, onChange func(*Config)) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		cfg, err := decode(v)
		if err != nil {
			log.Error("config reload failed", err, "file", e.Name)
			return
		}
		log.Info("config reloaded", "file", e.Name)
		onChange(cfg)
	})
	v.WatchConfig()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyGroups, []map[string]any{
		{"name": group.Default, "color": group.DefaultColor, "visible": true},
	})
	v.SetDefault(keyFallbackColor, group.FallbackColor)
	v.SetDefault(keyOrphans, string(app.OrphanHide))
	v.SetDefault(keyRefresh, "@midnight")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFile, "")
}

// groupEntry is one item of the groups list; a missing visible key means
// the group is shown.
type groupEntry struct {
	Name    string `mapstructure:"name"`
	Color   string `mapstructure:"color"`
	Visible *bool  `mapstructure:"visible"`
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		FallbackColor: v.GetString(keyFallbackColor),
		Refresh:       v.GetString(keyRefresh),
		LogFile:       v.GetString(keyLogFile),
		File:          v.ConfigFileUsed(),
	}

	var entries []groupEntry
	if err := v.UnmarshalKey(keyGroups, &entries); err != nil {
		return nil, fmt.Errorf("config: groups: %w", err)
	}
	groups := make([]group.Group, 0, len(entries))
	for i, e := range entries {
		g := group.Group{Name: group.Normalize(e.Name), Color: e.Color, Visible: true}
		if g.Name == "" {
			return nil, fmt.Errorf("config: groups[%d]: name is empty", i)
		}
		if e.Visible != nil {
			g.Visible = *e.Visible
		}
		if g.Color == "" {
			g.Color = group.NewGroupColor
		}
		c, err := group.NormalizeColor(g.Color)
		if err != nil {
			return nil, fmt.Errorf("config: groups[%d] %q: %w", i, g.Name, err)
		}
		g.Color = c
		groups = append(groups, g)
	}
	cfg.Groups = groups

	var err error
	if cfg.Orphans, err = app.ParseOrphanPolicy(v.GetString(keyOrphans)); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.LogLevel, err = log.ParseLevel(v.GetString(keyLogLevel)); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.LogFile != "" {
		if cfg.LogFile, err = homedir.Expand(cfg.LogFile); err != nil {
			return nil, fmt.Errorf("config: log.file: %w", err)
		}
	}
	return cfg, nil
}

// Calendar builds the initial application state described by cfg.
func (c *Config) Calendar() *app.Calendar {
	return app.New(app.Options{
		Groups:        c.Groups,
		Orphans:       c.Orphans,
		FallbackColor: c.FallbackColor,
	})
}

// ApplyTo brings a running calendar in line with a reloaded configuration.
// Groups missing from cal are added and configured colors replace the current
// ones. Groups are never removed and visibility is left alone so that a
// reload does not undo what the user toggled.
func (c *Config) ApplyTo(cal *app.Calendar) {
	cal.SetOrphanPolicy(c.Orphans)
	if c.FallbackColor != cal.FallbackColor() {
		cal.SetFallbackColor(c.FallbackColor)
	}
	for _, g := range c.Groups {
		cur, ok := cal.Group(g.Name)
		switch {
		case !ok:
			if _, err := cal.AddGroup(g.Name, g.Color); err != nil {
				log.Error("config group not added", err, "group", g.Name)
			}
		case cur.Color != g.Color:
			if err := cal.SetGroupColor(g.Name, g.Color); err != nil {
				log.Error("config group color not applied", err, "group", g.Name)
			}
		}
	}
}
