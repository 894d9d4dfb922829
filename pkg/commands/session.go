package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"

	"tableflip.dev/evcal/pkg/app"
	"tableflip.dev/evcal/pkg/config"
	"tableflip.dev/evcal/pkg/log"
)

// session is the loaded configuration and the calendar built from it.
type session struct {
	v   *viper.Viper
	cfg *config.Config
	cal *app.Calendar

	logFile *os.File
}

// load reads the configuration and sets up logging. With quiet set, log
// lines are discarded unless a log file is configured, so they do not draw
// over a full screen UI.
func load(quiet bool) (*session, error) {
	v := viper.New()
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return nil, err
	}

	s := &session{v: v, cfg: cfg}
	if err := s.setupLogging(quiet); err != nil {
		return nil, err
	}
	if cfg.File != "" {
		log.Debug("config loaded", "file", cfg.File)
	}
	s.cal = cfg.Calendar()
	return s, nil
}

func (s *session) setupLogging(quiet bool) error {
	level := s.cfg.LogLevel
	if lo.Level != "" {
		l, err := log.ParseLevel(lo.Level)
		if err != nil {
			return err
		}
		level = l
	}
	log.SetLevel(level)

	file := s.cfg.LogFile
	if lo.File != "" {
		file = lo.File
	}
	switch {
	case file != "":
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		s.logFile = f
		log.SetOutput(f)
	case quiet:
		log.SetOutput(io.Discard)
	}
	return nil
}

// watch applies config file edits to the running calendar.
func (s *session) watch() {
	config.Watch(s.v, func(cfg *config.Config) {
		cfg.ApplyTo(s.cal)
	})
}

func (s *session) Close() {
	if s.logFile != nil {
		log.SetOutput(os.Stderr)
		_ = s.logFile.Close()
	}
}
