// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package host

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/albertocavalcante/buildergen/generator"
)

// DefaultDebounce is the quiet period before a change triggers a pass.
const DefaultDebounce = 300 * time.Millisecond

// TriggerFunc handles a batch of changes. It is never called concurrently
// with itself.
type TriggerFunc func(ctx context.Context, triggers generator.Trigger)

// Watcher turns file system events into generation triggers.
//
// A change to the metadata file fires TriggerCompilation; any other change
// under the watched directories fires TriggerAdditionalTexts. Changes that
// arrive within the debounce period are merged into one call.
type Watcher struct {
	metadata string
	ignore   []string
	debounce time.Duration
	onChange TriggerFunc
	log      *zap.SugaredLogger
	fsw      *fsnotify.Watcher

	mu      sync.Mutex
	pending generator.Trigger
	timer   *time.Timer
	runMu   sync.Mutex
}

// WatcherOptions configures a Watcher.
type WatcherOptions struct {
	// MetadataPath is the metadata document; may be empty.
	MetadataPath string

	// Dirs are the directories to watch.
	Dirs []string

	// IgnoreDirs are directories whose events are dropped, such as the
	// output directory.
	IgnoreDirs []string

	// Debounce is the quiet period (default: DefaultDebounce).
	Debounce time.Duration

	// Logger receives watcher events. If nil, nothing is logged.
	Logger *zap.SugaredLogger
}

// NewWatcher creates a watcher over opts.Dirs that calls onChange.
func NewWatcher(opts WatcherOptions, onChange TriggerFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fsnotify watcher")
	}
	for _, dir := range opts.Dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, errors.Wrapf(err, "watch %s", dir)
		}
	}

	w := &Watcher{
		debounce: opts.Debounce,
		onChange: onChange,
		log:      opts.Logger,
		fsw:      fsw,
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	if w.log == nil {
		w.log = zap.NewNop().Sugar()
	}
	if opts.MetadataPath != "" {
		w.metadata = filepath.Clean(opts.MetadataPath)
	}
	for _, dir := range opts.IgnoreDirs {
		w.ignore = append(w.ignore, filepath.Clean(dir))
	}
	return w, nil
}

// Run processes events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stopTimer()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			trigger := w.Classify(event)
			if trigger == 0 {
				continue
			}
			w.log.Debugw("Watcher detected change",
				"file", event.Name,
				"op", event.Op.String(),
				"trigger", trigger.String())
			w.schedule(ctx, trigger)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("Watcher error", "error", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.stopTimer()
	return w.fsw.Close()
}

// Classify maps an event to the trigger it fires, or 0 to ignore it.
func (w *Watcher) Classify(event fsnotify.Event) generator.Trigger {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return 0
	}
	name := filepath.Clean(event.Name)
	if isScratchFile(name) || w.ignored(name) {
		return 0
	}
	if w.metadata != "" && name == w.metadata {
		return generator.TriggerCompilation
	}
	return generator.TriggerAdditionalTexts
}

func (w *Watcher) ignored(name string) bool {
	for _, dir := range w.ignore {
		if name == dir || strings.HasPrefix(name, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// schedule merges trigger into the pending set and restarts the quiet period.
func (w *Watcher) schedule(ctx context.Context, trigger generator.Trigger) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending |= trigger
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		fired := w.pending
		w.pending = 0
		w.mu.Unlock()

		if fired == 0 || ctx.Err() != nil {
			return
		}
		w.runMu.Lock()
		defer w.runMu.Unlock()
		w.onChange(ctx, fired)
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

// isScratchFile reports editor swap files and our own temp files.
func isScratchFile(name string) bool {
	base := filepath.Base(name)
	return strings.HasPrefix(base, ".buildergen-") ||
		strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp")
}
