// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package host

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/albertocavalcante/buildergen/generator"
)

func TestWatcher_Classify(t *testing.T) {
	dir := t.TempDir()
	meta := filepath.Join(dir, "domain.yaml")
	out := filepath.Join(dir, "generated")

	w, err := NewWatcher(WatcherOptions{MetadataPath: meta, IgnoreDirs: []string{out}}, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	tests := []struct {
		name  string
		event fsnotify.Event
		want  generator.Trigger
	}{
		{
			name:  "metadata write",
			event: fsnotify.Event{Name: meta, Op: fsnotify.Write},
			want:  generator.TriggerCompilation,
		},
		{
			name:  "resource create",
			event: fsnotify.Event{Name: filepath.Join(dir, "i18n", "en.json"), Op: fsnotify.Create},
			want:  generator.TriggerAdditionalTexts,
		},
		{
			name:  "resource removed",
			event: fsnotify.Event{Name: filepath.Join(dir, "en.json"), Op: fsnotify.Remove},
			want:  generator.TriggerAdditionalTexts,
		},
		{
			name:  "chmod only",
			event: fsnotify.Event{Name: meta, Op: fsnotify.Chmod},
			want:  0,
		},
		{
			name:  "own temp file",
			event: fsnotify.Event{Name: filepath.Join(dir, ".buildergen-123.tmp"), Op: fsnotify.Create},
			want:  0,
		},
		{
			name:  "editor swap file",
			event: fsnotify.Event{Name: filepath.Join(dir, ".domain.yaml.swp"), Op: fsnotify.Write},
			want:  0,
		},
		{
			name:  "output directory",
			event: fsnotify.Event{Name: filepath.Join(out, "DomainModelBuilder.g.cs"), Op: fsnotify.Create},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Classify(tt.event); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestWatcher_Debounce(t *testing.T) {
	dir := t.TempDir()
	meta := filepath.Join(dir, "domain.yaml")
	if err := os.WriteFile(meta, []byte("assembly: Domain\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fired := make(chan generator.Trigger, 4)
	w, err := NewWatcher(WatcherOptions{
		MetadataPath: meta,
		Dirs:         []string{dir},
		Debounce:     50 * time.Millisecond,
	}, func(_ context.Context, triggers generator.Trigger) {
		fired <- triggers
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	if err := os.WriteFile(meta, []byte("assembly: Domain\nglobal: {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var got generator.Trigger
	deadline := time.After(5 * time.Second)
	for got != generator.TriggerAll {
		select {
		case tr := <-fired:
			got |= tr
		case <-deadline:
			t.Fatalf("triggers = %v, want %v", got, generator.TriggerAll)
		}
	}
}

func TestNewWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(WatcherOptions{Dirs: []string{filepath.Join(t.TempDir(), "missing")}}, nil)
	if err == nil {
		t.Fatal("NewWatcher() succeeded for a missing directory")
	}
}
