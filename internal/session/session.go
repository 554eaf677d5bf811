package session

import (
	"sync"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/model"
)

// Store is the key-value capability the client is constructed with. Load
// reports ok=false when no session is persisted; Save and Clear always
// write the token and userId pair atomically, never one half.
type Store interface {
	Load() (model.Session, bool, error)
	Save(model.Session) error
	Clear() error
}

// Memory is an in-process Store, used in tests and by callers that do not
// want credentials on disk.
type Memory struct {
	mu      sync.Mutex
	session model.Session
	ok      bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load() (model.Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session, m.ok, nil
}

func (m *Memory) Save(s model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = s
	m.ok = true
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = model.Session{}
	m.ok = false
	return nil
}
