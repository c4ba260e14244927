package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	watchfs "github.com/corey/clangdgen/internal/adapters/fsnotify"
	"github.com/corey/clangdgen/internal/app"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate on database changes",
	Long: "Writes the config once, then rewrites it whenever the preset's " +
		"compilation database changes. Runs until interrupted.",
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	root := projectRoot()

	// Diagnostics go through the logger in watch mode; silence the
	// per-generation stderr lines.
	opts := app.Options{
		Root:    root,
		Preset:  presetFlag,
		DirOnly: dirFlag,
		Stderr:  io.Discard,
	}

	res, err := app.Generate(opts)
	if err != nil {
		return err
	}
	if err := recordGeneration(root, res); err != nil {
		logger.Warn().Err(err).Msg("record generation")
	}
	logger.Info().Str("preset", res.Preset).Str("config", res.ConfigFile).Msg("config written")

	// Pin the resolved preset so later passes cannot flip if flags change.
	opts.Preset = res.Preset

	paths := app.NewPaths(root)
	presetDir := paths.PresetDir(res.Preset)
	if err := os.MkdirAll(presetDir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", presetDir, err)
	}

	w, err := watchfs.NewWatcher()
	if err != nil {
		return fmt.Errorf("init watcher: %w", err)
	}
	defer w.Stop()

	err = w.Watch(presetDir, func(path string) {
		if filepath.Base(path) != app.DatabaseFileName {
			return
		}
		res, err := app.Generate(opts)
		if err != nil {
			logger.Error().Err(err).Msg("regenerate")
			return
		}
		if err := recordGeneration(root, res); err != nil {
			logger.Warn().Err(err).Msg("record generation")
		}
		logger.Info().Str("database", path).Msg("database changed, config refreshed")
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", presetDir, err)
	}

	logger.Info().Str("dir", presetDir).Msg("watching for compilation database changes")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info().Msg("shutting down")
	return nil
}
