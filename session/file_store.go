package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// slotFile is the well-known name of the single session slot.
const slotFile = "@user"

var _ Store = (*FileStore)(nil)

// FileStore persists the session as JSON in a single file under dir.
type FileStore struct {
	dir  string
	log  zerolog.Logger
	lock sync.Mutex
}

func NewFileStore(dir string, log zerolog.Logger) *FileStore {
	return &FileStore{dir: dir, log: log}
}

func (fs *FileStore) path() string {
	return filepath.Join(fs.dir, slotFile)
}

func (fs *FileStore) Save(s *Session) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	if s == nil {
		return
	}
	if err := os.MkdirAll(fs.dir, 0o700); err != nil {
		fs.log.Error().Err(err).Str("dir", fs.dir).Msg("session store: create data folder")
		return
	}
	data, err := json.Marshal(s)
	if err != nil {
		fs.log.Error().Err(err).Msg("session store: marshal session")
		return
	}
	if err := os.WriteFile(fs.path(), data, 0o600); err != nil {
		fs.log.Error().Err(err).Str("path", fs.path()).Msg("session store: write slot")
	}
}

func (fs *FileStore) Load() *Session {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	data, err := os.ReadFile(fs.path())
	if err != nil {
		if !os.IsNotExist(err) {
			fs.log.Error().Err(err).Str("path", fs.path()).Msg("session store: read slot")
		}
		return nil
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		fs.log.Error().Err(err).Str("path", fs.path()).Msg("session store: corrupt slot")
		return nil
	}
	return &s
}

func (fs *FileStore) Clear() {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	if err := os.Remove(fs.path()); err != nil && !os.IsNotExist(err) {
		fs.log.Error().Err(err).Str("path", fs.path()).Msg("session store: clear slot")
	}
}
