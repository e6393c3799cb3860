// Package watch implements a recompile-on-change loop: it watches a ladder
// source file with fsnotify and re-runs compile.Compile whenever the file is
// written, emitting the framed IR to an output path. A long-lived
// *fsnotify.Watcher feeds a single event-handling loop, the same shape used
// to watch a repository ref file for branch switches, adapted here to watch
// a ladder source file for edits instead.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/plcgo/ladderc/ir"
)

// Decoder turns a source file's bytes into compiled output: it decodes the
// ladder and compiles it. Callers supply this since the core accepts "any serialization preserving the
// data model" (§6); watch itself stays format-agnostic.
type Decoder func([]byte) (*ir.Output, error)

// Watcher recompiles sourcePath into outPath every time sourcePath changes.
type Watcher struct {
	sourcePath string
	outPath    string
	compileFn  Decoder
	log        *slog.Logger
}

// New returns a Watcher. compileFn decodes the raw source bytes and runs
// compile.Compile (or an equivalent), returning the Output to write.
func New(sourcePath, outPath string, compileFn Decoder, log *slog.Logger) *Watcher {
	if log == nil {
		log = slog.Default()
	}
	return &Watcher{sourcePath: sourcePath, outPath: outPath, compileFn: compileFn, log: log}
}

// Run blocks, recompiling on every write/create event to sourcePath until
// ctx is canceled. It recompiles once immediately on entry so the output
// file exists before the first edit.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.recompile(); err != nil {
		w.log.Error("initial compile failed", "error", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: creating fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.sourcePath); err != nil {
		return fmt.Errorf("watch: watching %q: %w", w.sourcePath, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if err := w.recompile(); err != nil {
					w.log.Error("recompile failed", "path", w.sourcePath, "error", err)
				}
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) recompile() error {
	raw, err := os.ReadFile(w.sourcePath)
	if err != nil {
		return fmt.Errorf("watch: reading %q: %w", w.sourcePath, err)
	}

	out, err := w.compileFn(raw)
	if err != nil {
		return fmt.Errorf("watch: decoding %q: %w", w.sourcePath, err)
	}

	f, err := os.Create(w.outPath)
	if err != nil {
		return fmt.Errorf("watch: creating %q: %w", w.outPath, err)
	}
	defer f.Close()

	if err := ir.WriteFramed(f, out); err != nil {
		return fmt.Errorf("watch: writing framed output: %w", err)
	}

	w.log.Info("recompiled", "source", w.sourcePath, "out", w.outPath, "rungs", len(out.Rungs))
	return nil
}
