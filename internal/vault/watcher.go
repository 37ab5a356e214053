package vault

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/Paintersrp/activities/internal/pathutil"
)

// ChangedMsg reports that a markdown file in the vault was created, written,
// removed or renamed. Paths are vault-relative.
type ChangedMsg struct {
	Path string
}

type WatcherErrMsg struct {
	Err error
}

// Watcher turns fsnotify events under the vault into bubbletea messages.
// Bursts of events (editors often write a file several times) are coalesced
// into one message per debounce window.
type Watcher struct {
	watcher  *fsnotify.Watcher
	root     string
	ignored  func(rel string) bool
	debounce time.Duration
	done     chan struct{}
	once     sync.Once
}

const defaultDebounce = 150 * time.Millisecond

func NewWatcher(v *Vault) (*Watcher, error) {
	if v == nil {
		return nil, errors.New("vault cannot be nil")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watcher := &Watcher{
		watcher:  w,
		root:     v.root,
		ignored:  v.isIgnored,
		debounce: defaultDebounce,
		done:     make(chan struct{}),
	}

	if err := watcher.addRecursive(v.root); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return watcher, nil
}

// SetDebounce changes the coalescing window. Zero disables coalescing.
func (w *Watcher) SetDebounce(d time.Duration) {
	if w == nil {
		return
	}
	w.debounce = d
}

// Next returns a command that blocks until the next relevant change. Callers
// re-issue it after handling each ChangedMsg.
func (w *Watcher) Next() tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		var (
			pending *ChangedMsg
			timer   <-chan time.Time
		)

		for {
			select {
			case <-w.done:
				return nil
			case <-timer:
				return *pending
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}

				if event.Op&fsnotify.Create != 0 {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						_ = w.addRecursive(event.Name)
						continue
					}
				}

				rel, relevant := w.relevant(event)
				if !relevant {
					continue
				}

				if w.debounce <= 0 {
					return ChangedMsg{Path: rel}
				}
				if pending == nil {
					timer = time.After(w.debounce)
				}
				pending = &ChangedMsg{Path: rel}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return WatcherErrMsg{Err: err}
				}
			}
		}
	}
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
	})

	return closeErr
}

func (w *Watcher) addRecursive(root string) error {
	normalized := pathutil.NormalizePath(root)
	return filepath.WalkDir(normalized, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return filepath.SkipDir
			}
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if path != w.root {
			if pathutil.IsHidden(d.Name()) {
				return filepath.SkipDir
			}
			if rel, _ := pathutil.VaultRelative(w.root, path); rel != "" && w.ignored(rel) {
				return filepath.SkipDir
			}
		}

		return w.watcher.Add(path)
	})
}

func (w *Watcher) relevant(event fsnotify.Event) (string, bool) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return "", false
	}

	rel, err := pathutil.VaultRelative(w.root, event.Name)
	if err != nil || rel == "" {
		return "", false
	}

	for _, part := range strings.Split(rel, "/") {
		if pathutil.IsHidden(part) {
			return "", false
		}
	}

	return rel, pathutil.IsMarkdown(rel)
}
