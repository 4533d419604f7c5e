package store

import (
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// selfWriteWindow is how long after MarkSelfWrite the watcher treats
// events as echoes of this process's own save.
const selfWriteWindow = 500 * time.Millisecond

// Watcher reports external modifications to a project file so an open
// project can offer a reload. The engine itself never reacts to disk
// state; the watcher only invokes the supplied callback.
type Watcher struct {
	fsw  *fsnotify.Watcher
	done chan struct{}

	// selfUntil is a unix-nano deadline; events before it are our own
	// writes and do not fire the callback.
	selfUntil atomic.Int64
}

// WatchFile watches one file path, invoking onChange whenever it is
// written or recreated. The watch is on the parent directory so editors
// that replace the file (write temp + rename) are still observed.
func WatchFile(path string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{fsw: fsw, done: make(chan struct{})}
	go func() {
		defer close(w.done)
		for {
			select {
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if ev.Name != abs || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if time.Now().UnixNano() < w.selfUntil.Load() {
					continue
				}
				onChange()
			case _, ok := <-fsw.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return w, nil
}

// MarkSelfWrite suppresses the callback for events arriving in the next
// few hundred milliseconds. Callers invoke it before saving the watched
// file themselves, so only genuinely external edits are reported.
func (w *Watcher) MarkSelfWrite() {
	w.selfUntil.Store(time.Now().Add(selfWriteWindow).UnixNano())
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
