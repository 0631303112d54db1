package credstore

import (
	"carelink-agent/internal/app/models"
	"carelink-agent/internal/pkg/exceptions"
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
)

// FileStore keeps the session record in a single json file next to the
// agent. Writes are synchronous so a readback right after Save sees the
// new record.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(ctx context.Context, record *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(record)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	tmpPath := s.path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return exceptions.ErrCredentialPersist(err)
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return exceptions.ErrCredentialPersist(err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return exceptions.ErrCredentialPersist(err)
	}
	if err := file.Close(); err != nil {
		return exceptions.ErrCredentialPersist(err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return exceptions.ErrCredentialPersist(err)
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context) (*models.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, exceptions.ErrCredentialLoad(err)
	}

	record := new(models.Session)
	if err := json.Unmarshal(data, record); err != nil {
		return nil, false, exceptions.ErrCannotParseJSON(err)
	}
	return record, true, nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return exceptions.ErrCredentialClear(err)
	}
	return nil
}

// Path returns the resolved record location, mainly for logging.
func (s *FileStore) Path() string {
	abs, err := filepath.Abs(s.path)
	if err != nil {
		return s.path
	}
	return abs
}
