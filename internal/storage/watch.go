package storage

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher reports edits to the config file.
type ConfigWatcher struct {
	fsw     *fsnotify.Watcher
	path    string
	changes chan *Config
	errs    chan error
}

// WatchConfig watches the directory holding path, so editors that replace the
// file on save are still seen. Each write or create reloads the file; a
// config that fails to load is sent on Errors instead.
func WatchConfig(path string) (*ConfigWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching config dir: %w", err)
	}

	cw := &ConfigWatcher{
		fsw:     fsw,
		path:    filepath.Clean(path),
		changes: make(chan *Config, 1),
		errs:    make(chan error, 1),
	}
	go cw.run()
	return cw, nil
}

// Changes delivers freshly loaded configs. Closed when the watcher stops.
func (cw *ConfigWatcher) Changes() <-chan *Config {
	return cw.changes
}

// Errors delivers reload and watch failures. Closed when the watcher stops.
func (cw *ConfigWatcher) Errors() <-chan error {
	return cw.errs
}

// Close stops watching.
func (cw *ConfigWatcher) Close() error {
	return cw.fsw.Close()
}

func (cw *ConfigWatcher) run() {
	defer close(cw.errs)
	defer close(cw.changes)

	for {
		select {
		case event, ok := <-cw.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := LoadConfig(cw.path)
			if err != nil {
				cw.sendErr(err)
				continue
			}
			// Drop a stale pending config in favour of the newest one.
			select {
			case <-cw.changes:
			default:
			}
			cw.changes <- cfg

		case err, ok := <-cw.fsw.Errors:
			if !ok {
				return
			}
			cw.sendErr(err)
		}
	}
}

func (cw *ConfigWatcher) sendErr(err error) {
	select {
	case cw.errs <- err:
	default:
	}
}
