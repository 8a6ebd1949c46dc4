// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     config
// Description: Reloads the configuration file when it changes on disk
// Author:      Mike Stoffels
// Created:     2026-10-06
// License:     MIT
// ============================================================================

package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/mCALC/foundation/core/error"
	mdwlog "github.com/msto63/mCALC/foundation/core/log"
)

// DefaultReloadDelay is how long a file must stay quiet before it is
// reloaded. Editors often write a file in several steps.
const DefaultReloadDelay = 200 * time.Millisecond

// ChangeHandler receives the reloaded configuration, or the error that
// prevented loading it
type ChangeHandler func(cfg *Config, err error)

// Watcher reloads a configuration file on every change and passes the
// result to a ChangeHandler. Reloaded configurations get the environment
// overrides applied and are validated, like Discover does.
type Watcher struct {
	path     string
	delay    time.Duration
	onChange ChangeHandler
	logger   *mdwlog.Logger

	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a watcher for path. A nil logger disables logging.
func NewWatcher(path string, logger *mdwlog.Logger, onChange ChangeHandler) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid configuration path").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.NewWatcher").
			WithDetail("path", path)
	}
	if logger == nil {
		logger = mdwlog.Discard()
	}

	return &Watcher{
		path:     abs,
		delay:    DefaultReloadDelay,
		onChange: onChange,
		logger:   logger.WithField("config_path", abs),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// SetDelay changes the quiet period before a reload. Call before Start.
func (w *Watcher) SetDelay(delay time.Duration) {
	w.delay = delay
}

// Start begins watching. The directory is watched instead of the file so
// that editors replacing the file are noticed as well.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watcher.Start")
	}

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return mdwerror.Wrap(err, "failed to watch configuration directory").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watcher.Start").
			WithDetail("dir", filepath.Dir(w.path))
	}

	w.watcher = watcher
	w.logger.Debug("watching configuration file")

	go w.loop(ctx)
	return nil
}

// Stop ends watching and waits for the watch loop to exit
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
	if w.watcher != nil {
		<-w.done
	}
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	defer w.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.WarnWithErr("configuration watcher error", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err == nil {
		err = cfg.ApplyEnv()
	}
	if err == nil {
		err = cfg.Validate()
	}

	if err != nil {
		w.logger.LogError(err)
		cfg = nil
	} else {
		w.logger.Info("configuration reloaded")
	}

	if w.onChange != nil {
		w.onChange(cfg, err)
	}
}
