package cli

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/starmap/pkg/galaxy"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 150 * time.Millisecond

// configReload is a config file that changed on disk, loaded again.
// Err is set when the new contents are invalid.
type configReload struct {
	Config galaxy.Config
	Err    error
}

// configWatcher reloads a config file whenever it changes.
//
// The parent directory is watched rather than the file, since editors
// often save by writing a new file and renaming it over the old one.
type configWatcher struct {
	Path    string
	Reloads <-chan configReload

	reloads chan configReload
	done    chan struct{}
	watcher *fsnotify.Watcher
}

func newConfigWatcher(path string) (*configWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	ch := make(chan configReload, 4)
	return &configWatcher{
		Path:    abs,
		Reloads: ch,
		reloads: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching.
func (w *configWatcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		w.watcher.Close()
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Reloads channel.
func (w *configWatcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.reloads)
}

func (w *configWatcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(watchDebounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case now := <-ticker.C:
			if pending.IsZero() || now.Sub(pending) < watchDebounce {
				continue
			}
			pending = time.Time{}
			cfg, err := galaxy.LoadConfig(w.Path)
			select {
			case w.reloads <- configReload{Config: cfg, Err: err}:
			default:
				// Receiver is behind; it will pick up the next change.
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
