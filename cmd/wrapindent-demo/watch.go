package main

import (
	"log"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// fileChangedMsg asks the model to reload path from disk.
type fileChangedMsg struct {
	path string
}

// watchFile reports writes to path through send, debounced. The parent
// directory is watched so editors that replace the file on save are seen.
func watchFile(path string, send func(tea.Msg)) (*fsnotify.Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		debounce := time.NewTimer(reloadDebounce)
		debounce.Stop()
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				debounce.Reset(reloadDebounce)
			case <-debounce.C:
				send(fileChangedMsg{path: path})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("watch %s: %v", path, err)
			}
		}
	}()
	return watcher, nil
}
