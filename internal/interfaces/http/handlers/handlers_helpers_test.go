package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"paletto-cards.backend/internal/domain/entities"
	domainerrors "paletto-cards.backend/internal/domain/errors"
)

// memberRepoStub is an in-memory MemberRepository for handler tests
type memberRepoStub struct {
	members []*entities.Member
	listErr error
}

func (s *memberRepoStub) List(_ context.Context) ([]*entities.Member, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.members, nil
}

func (s *memberRepoStub) GetByID(_ context.Context, id string) (*entities.Member, error) {
	for _, m := range s.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *memberRepoStub) Create(_ context.Context, member *entities.Member) error {
	s.members = append(s.members, member)
	return nil
}

func (s *memberRepoStub) Update(_ context.Context, member *entities.Member) error {
	for i, m := range s.members {
		if m.ID == member.ID {
			s.members[i] = member
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

func (s *memberRepoStub) Delete(_ context.Context, id string) error {
	for i, m := range s.members {
		if m.ID == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

// noopUow runs the work without a transaction scope
type noopUow struct{}

func (noopUow) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body=%s", rec.Body.String())
}
