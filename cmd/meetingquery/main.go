package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/TudorHulban/meetings"
	"github.com/TudorHulban/meetings/internal/config"
	"github.com/TudorHulban/meetings/internal/ics"
	appLog "github.com/TudorHulban/meetings/internal/log"
)

func main() {
	configPath := flag.String("config", "query.yaml", "path to the YAML query file")
	flag.Parse()

	if errRun := run(*configPath, os.Stdout); errRun != nil {
		fmt.Fprintln(os.Stderr, errRun)

		os.Exit(1)
	}
}

func run(configPath string, w io.Writer) error {
	cfg, errLoad := config.Load(configPath)
	if errLoad != nil {
		return errLoad
	}

	logger, errLogger := appLog.New(cfg.LogLevel)
	if errLogger != nil {
		return errLogger
	}
	defer logger.Sync() //nolint:errcheck

	request, errRequest := cfg.MeetingRequest()
	if errRequest != nil {
		return fmt.Errorf("request: %w", errRequest)
	}

	events, errEvents := gatherEvents(cfg, filepath.Dir(configPath), logger)
	if errEvents != nil {
		return errEvents
	}

	response := meetings.QueryWithDetails(events, request)

	logger.Info(
		"query completed",
		zap.Int("events", len(events)),
		zap.Int("duration", request.Duration()),
		zap.Strings("attendees", request.Attendees().Names()),
		zap.Strings("optional", request.OptionalAttendees().Names()),
		zap.Int("slots", len(response.Slots)),
	)

	if response.IsFallback {
		logger.Warn(
			"no slot suits the optional attendees, showing mandatory availability",
			zap.Strings("optional", request.OptionalAttendees().Names()),
		)
	}

	_, errWrite := io.WriteString(w, response.Slots.Clock())

	return errWrite
}

// gatherEvents resolves ICS paths relative to the config file directory.
func gatherEvents(cfg *config.Config, baseDir string, logger *zap.Logger) ([]*meetings.Event, error) {
	result, errInline := cfg.InlineEvents()
	if errInline != nil {
		return nil,
			errInline
	}

	if len(cfg.ICS) == 0 {
		return result,
			nil
	}

	day, errDay := cfg.Day()
	if errDay != nil {
		return nil,
			fmt.Errorf("date: %w", errDay)
	}

	for _, source := range cfg.ICS {
		path := source.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		events, errRead := ics.ReadDayFile(
			path,
			&ics.ParamsReadDay{
				Day:        day,
				SourceName: source.Name,
				Logger:     logger,
			},
		)
		if errRead != nil {
			return nil,
				errRead
		}

		result = append(result, events...)
	}

	return result,
		nil
}
