package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"paletto-cards.backend/internal/domain/entities"
	domainerrors "paletto-cards.backend/internal/domain/errors"
	"paletto-cards.backend/pkg/logger"
	"paletto-cards.backend/pkg/metrics"
)

// document is the single serialized blob behind the store file: the whole
// roster plus the admin settings map.
type document struct {
	Members  []*entities.Member `json:"members"`
	Settings map[string]string  `json:"settings,omitempty"`
}

// Store is the file-backed member and settings store. The entire state
// lives in one JSON blob; every write rewrites the blob atomically under
// the mutex, so no unit-of-work transaction is needed.
//
// A missing or unparseable blob degrades to the default roster. The
// degradation is logged and counted rather than surfaced as an error.
type Store struct {
	mu   sync.Mutex
	path string
	doc  *document
}

// New opens (or initializes) the store at path
func New(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.doc = &document{Members: DefaultRoster(), Settings: map[string]string{}}
		return s.save()
	}
	if err != nil {
		return err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Warn(context.Background(), "local store blob is corrupt, restoring default roster",
			zap.String("path", s.path), zap.Error(err))
		metrics.StoreCorruptionTotal.Inc()
		s.doc = &document{Members: DefaultRoster(), Settings: map[string]string{}}
		return s.save()
	}

	if doc.Settings == nil {
		doc.Settings = map[string]string{}
	}
	s.doc = &doc
	return nil
}

// save writes the blob via a temp file and rename so a crash mid-write
// cannot leave a truncated document.
func (s *Store) save() error {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// List returns all members in creation order
func (s *Store) List(ctx context.Context) ([]*entities.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]*entities.Member, len(s.doc.Members))
	for i, m := range s.doc.Members {
		items[i] = cloneMember(m)
	}
	return items, nil
}

// GetByID returns the member or ErrNotFound
func (s *Store) GetByID(ctx context.Context, id string) (*entities.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.doc.Members {
		if m.ID == id {
			return cloneMember(m), nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

// Create appends the member to the roster
func (s *Store) Create(ctx context.Context, member *entities.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.doc.Members {
		if m.ID == member.ID {
			return domainerrors.ErrAlreadyExists
		}
	}

	now := time.Now()
	if member.CreatedAt.IsZero() {
		member.CreatedAt = now
	}
	member.UpdatedAt = now

	s.doc.Members = append(s.doc.Members, sanitizeMember(member))
	return s.save()
}

// Update replaces the member in place, keeping its roster position and
// creation time.
func (s *Store) Update(ctx context.Context, member *entities.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.doc.Members {
		if m.ID != member.ID {
			continue
		}
		member.CreatedAt = m.CreatedAt
		member.UpdatedAt = time.Now()
		s.doc.Members[i] = sanitizeMember(member)
		return s.save()
	}
	return domainerrors.ErrNotFound
}

// Delete removes the member from the roster
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.doc.Members {
		if m.ID != id {
			continue
		}
		s.doc.Members = append(s.doc.Members[:i], s.doc.Members[i+1:]...)
		return s.save()
	}
	return domainerrors.ErrNotFound
}

// Get returns the setting for key or ErrNotFound
func (s *Store) Get(ctx context.Context, key string) (*entities.AdminSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.doc.Settings[key]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return &entities.AdminSetting{Key: key, Value: value}, nil
}

// Upsert inserts or overwrites the setting for key
func (s *Store) Upsert(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Settings[key] = value
	return s.save()
}

// UnitOfWork is the pass-through transaction scope for the file store:
// each store write is already atomic under the mutex.
type UnitOfWork struct{}

// NewUnitOfWork creates the pass-through unit of work
func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{}
}

// Do runs fn directly
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// sanitizeMember applies the same write-side filtering as the relational
// mapper: empty skills excluded, social entries limited to known
// platforms with non-empty URLs.
func sanitizeMember(e *entities.Member) *entities.Member {
	m := cloneMember(e)
	skills := make([]string, 0, len(m.Skills))
	for _, s := range m.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	m.Skills = skills

	social := make(map[entities.SocialPlatform]string, len(m.Social))
	for _, platform := range entities.SocialPlatforms {
		if url := strings.TrimSpace(m.Social[platform]); url != "" {
			social[platform] = url
		}
	}
	m.Social = social
	return m
}

func cloneMember(e *entities.Member) *entities.Member {
	c := *e
	c.Skills = append([]string(nil), e.Skills...)
	c.Social = make(map[entities.SocialPlatform]string, len(e.Social))
	for k, v := range e.Social {
		c.Social[k] = v
	}
	return &c
}
