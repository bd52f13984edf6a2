package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docnav/internal/docs"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// Watcher invalidates an index when markdown files or directories below
// Root are created, changed, removed or renamed. Bursts of events are
// coalesced into one invalidation per debounce window.
type Watcher struct {
	root     string
	target   Invalidator
	debounce time.Duration

	watcher  *fsnotify.Watcher
	trigger  chan struct{}
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWatcher creates a watcher for root. It does not watch anything until
// Start is called.
func NewWatcher(root string, target Invalidator, debounce time.Duration) (*Watcher, error) {
	if target == nil {
		return nil, ferrors.ValidationError("watch target is required").Build()
	}
	if debounce <= 0 {
		return nil, ferrors.ValidationError("debounce must be > 0").Build()
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "resolve content root").
			WithContext("root", root).Build()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "create file watcher").Build()
	}
	return &Watcher{
		root:     abs,
		target:   target,
		debounce: debounce,
		watcher:  fw,
		trigger:  make(chan struct{}, 1),
		stopChan: make(chan struct{}),
	}, nil
}

// Start registers every directory below the root and begins processing
// events. fsnotify is not recursive, so directories created later are added
// as they appear.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addTree(w.root); err != nil {
		return err
	}
	slog.Info("Starting content watcher", logfields.Path(w.root))

	w.wg.Add(2)
	go w.watchLoop(ctx)
	go w.invalidateLoop(ctx)
	return nil
}

// Stop ends event processing and releases the underlying watcher. It is
// safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		slog.Info("Stopping content watcher", logfields.Path(w.root))
		close(w.stopChan)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) addTree(dir string) error {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "watch content directory").
			WithContext("path", dir).Build()
	}
	return nil
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if isHidden(filepath.Base(event.Name)) {
		return
	}
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				slog.Warn("Failed to watch new directory", logfields.Path(event.Name), logfields.Error(err))
			}
			w.triggerInvalidate()
			return
		}
	}
	if !relevant(event) {
		return
	}
	slog.Debug("Content change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
	w.triggerInvalidate()
}

// relevant reports events that can change the corpus: any markdown change,
// and removal or rename of a directory (which has no extension).
func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(event.Name))
	if ext == ".md" || ext == ".markdown" {
		return true
	}
	return ext == "" && (event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename))
}

func (w *Watcher) triggerInvalidate() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

func (w *Watcher) invalidateLoop(ctx context.Context) {
	defer w.wg.Done()
	var timer *time.Timer
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
		}
	}

	for {
		select {
		case <-ctx.Done():
			stopTimer()
			return
		case <-w.stopChan:
			stopTimer()
			return
		case <-w.trigger:
			stopTimer()
			timer = time.AfterFunc(w.debounce, func() {
				w.target.Invalidate(docs.ReasonWatch)
			})
		}
	}
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
