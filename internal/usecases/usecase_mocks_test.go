package usecases

import (
	"context"
	"time"

	"paletto-cards.backend/internal/domain/entities"
	domainerrors "paletto-cards.backend/internal/domain/errors"
	"paletto-cards.backend/pkg/redis"
)

// memoryMemberRepo is an in-memory MemberRepository for usecase tests
type memoryMemberRepo struct {
	members   []*entities.Member
	createErr error
	updateErr error
	deleteErr error
}

func (r *memoryMemberRepo) List(ctx context.Context) ([]*entities.Member, error) {
	return r.members, nil
}

func (r *memoryMemberRepo) GetByID(ctx context.Context, id string) (*entities.Member, error) {
	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (r *memoryMemberRepo) Create(ctx context.Context, member *entities.Member) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.members = append(r.members, member)
	return nil
}

func (r *memoryMemberRepo) Update(ctx context.Context, member *entities.Member) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	for i, m := range r.members {
		if m.ID == member.ID {
			r.members[i] = member
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

func (r *memoryMemberRepo) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i, m := range r.members {
		if m.ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

// passthroughUow records whether a transaction scope was entered
type passthroughUow struct {
	calls int
}

func (u *passthroughUow) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	u.calls++
	return fn(ctx)
}

// memorySettingRepo is an in-memory SettingRepository; err simulates an
// unavailable settings store.
type memorySettingRepo struct {
	values    map[string]string
	getErr    error
	upsertErr error
}

func (r *memorySettingRepo) Get(ctx context.Context, key string) (*entities.AdminSetting, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	v, ok := r.values[key]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return &entities.AdminSetting{Key: key, Value: v}, nil
}

func (r *memorySettingRepo) Upsert(ctx context.Context, key, value string) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	if r.values == nil {
		r.values = map[string]string{}
	}
	r.values[key] = value
	return nil
}

// memorySessionStore is an in-memory SessionStore
type memorySessionStore struct {
	sessions  map[string]*redis.SessionData
	createErr error
}

func (s *memorySessionStore) CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, _ time.Duration) error {
	if s.createErr != nil {
		return s.createErr
	}
	if s.sessions == nil {
		s.sessions = map[string]*redis.SessionData{}
	}
	s.sessions[sessionID] = data
	return nil
}

func (s *memorySessionStore) GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error) {
	data, ok := s.sessions[sessionID]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return data, nil
}

func (s *memorySessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}
