// Package watch notifies subscribers when result files change on disk, so
// the live chart page can re-render without a reload.
package watch

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

type Event struct {
	// Path of the result file that changed.
	Path string
}

type Watcher struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int

	fsw *fsnotify.Watcher
	// paths holds the watched files by absolute path. fsnotify watches their
	// parent directories instead of the files themselves, so a file that is
	// replaced by rename (the usual editor and harness behaviour) keeps
	// producing events.
	paths map[string]bool
	// debounce collapses the burst of events a single rewrite produces.
	debounce time.Duration
}

func New(paths []string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		subs:     map[int]chan Event{},
		fsw:      fsw,
		paths:    map[string]bool{},
		debounce: debounce,
	}

	dirs := map[string]bool{}
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			_ = fsw.Close()
			return nil, err
		}
		w.paths[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	go w.run()

	return w, nil
}

func (w *Watcher) Subscribe() (int, <-chan Event, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.next
	w.next++
	ch := make(chan Event, 16)
	w.subs[id] = ch
	cancel := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if c, ok := w.subs[id]; ok {
			close(c)
			delete(w.subs, id)
		}
	}
	return id, ch, cancel
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) run() {
	var pending *time.Timer
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.paths[abs] {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(w.debounce, func() {
				w.broadcast(Event{abs})
			})
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %s", err)
		}
	}
}

func (w *Watcher) broadcast(event Event) {
	w.mu.Lock()
	for _, ch := range w.subs {
		select {
		case ch <- event:
		default:
		}
	}
	w.mu.Unlock()
}
