package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// ItemWatcher reloads an item catalog file whenever it changes on disk.
// Parsed catalogs arrive on Catalogs; the game loop applies them between
// ticks so definitions never change mid-tick.
type ItemWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	Catalogs chan *ItemCatalog
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
}

// WatchItems starts watching the directory holding path. Editors often
// replace files by rename, so the directory is watched rather than the file.
func WatchItems(path string) (*ItemWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch items: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch items: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch items %s: %w", abs, err)
	}

	w := &ItemWatcher{
		path:     abs,
		watcher:  fw,
		Catalogs: make(chan *ItemCatalog, 1),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *ItemWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *ItemWatcher) run() {
	defer close(w.done)
	defer close(w.Catalogs)

	// Reload once writes go quiet; a single save can emit several events.
	settle := time.NewTimer(reloadDebounce)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			settle.Reset(reloadDebounce)
		case <-settle.C:
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[config] watcher error: %v", err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *ItemWatcher) reload() {
	catalog, err := LoadItemCatalog(w.path)
	if err != nil {
		log.Printf("[config] keeping previous item catalog: %v", err)
		return
	}
	// Drop a pending catalog the loop has not picked up yet.
	select {
	case <-w.Catalogs:
	default:
	}
	select {
	case w.Catalogs <- catalog:
		log.Printf("[config] reloaded item catalog from %s", w.path)
	case <-w.closeCh:
	}
}
