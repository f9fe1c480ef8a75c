package usecases

import (
	"context"
	"errors"
	"strings"

	"paletto-cards.backend/internal/domain/entities"
	domainerrors "paletto-cards.backend/internal/domain/errors"
	"paletto-cards.backend/internal/domain/repositories"
	"paletto-cards.backend/pkg/metrics"
	"paletto-cards.backend/pkg/utils"
)

// MemberUsecase handles member aggregate business logic. All multi-row
// writes run inside the unit of work so the aggregate is never left
// partially updated.
type MemberUsecase struct {
	repo repositories.MemberRepository
	uow  repositories.UnitOfWork
}

// NewMemberUsecase creates a new member usecase
func NewMemberUsecase(repo repositories.MemberRepository, uow repositories.UnitOfWork) *MemberUsecase {
	return &MemberUsecase{repo: repo, uow: uow}
}

// List returns all members in creation order
func (u *MemberUsecase) List(ctx context.Context) ([]*entities.Member, error) {
	return u.repo.List(ctx)
}

// Get returns one member aggregate
func (u *MemberUsecase) Get(ctx context.Context, id string) (*entities.Member, error) {
	return u.repo.GetByID(ctx, id)
}

// Create creates a member, generating an id from the display name when
// the caller supplied none. Returns the stored aggregate.
func (u *MemberUsecase) Create(ctx context.Context, input *entities.MemberInput) (*entities.Member, error) {
	member, err := fromInput(input)
	if err != nil {
		return nil, err
	}

	if member.ID == "" {
		member.ID = utils.GenerateMemberID(member.Name)
	}

	// id is immutable once assigned, so a duplicate is a conflict rather
	// than an overwrite.
	if _, err := u.repo.GetByID(ctx, member.ID); err == nil {
		return nil, domainerrors.ErrAlreadyExists
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	if err := u.uow.Do(ctx, func(ctx context.Context) error {
		return u.repo.Create(ctx, member)
	}); err != nil {
		return nil, err
	}

	metrics.MemberWritesTotal.WithLabelValues("create").Inc()
	return member, nil
}

// Update fully replaces the member's scalar fields and child sets.
// Callers must supply every field; there are no sparse updates.
func (u *MemberUsecase) Update(ctx context.Context, id string, input *entities.MemberInput) (*entities.Member, error) {
	member, err := fromInput(input)
	if err != nil {
		return nil, err
	}
	member.ID = id

	if err := u.uow.Do(ctx, func(ctx context.Context) error {
		return u.repo.Update(ctx, member)
	}); err != nil {
		return nil, err
	}

	metrics.MemberWritesTotal.WithLabelValues("update").Inc()
	return member, nil
}

// Delete removes the member and its children
func (u *MemberUsecase) Delete(ctx context.Context, id string) error {
	if err := u.uow.Do(ctx, func(ctx context.Context) error {
		return u.repo.Delete(ctx, id)
	}); err != nil {
		return err
	}

	metrics.MemberWritesTotal.WithLabelValues("delete").Inc()
	return nil
}

// fromInput validates and normalizes a payload into an aggregate.
// Unknown social platforms are dropped silently.
func fromInput(input *entities.MemberInput) (*entities.Member, error) {
	name := strings.TrimSpace(input.Name)
	role := strings.TrimSpace(input.Role)
	if name == "" || role == "" {
		return nil, domainerrors.BadRequest("name and role are required")
	}

	social := make(map[entities.SocialPlatform]string, len(input.Social))
	for platform, url := range input.Social {
		if !entities.IsValidPlatform(platform) {
			continue
		}
		if url = strings.TrimSpace(url); url != "" {
			social[platform] = url
		}
	}

	skills := make([]string, 0, len(input.Skills))
	for _, s := range input.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}

	return &entities.Member{
		ID:           strings.TrimSpace(input.ID),
		Name:         name,
		NameEn:       strings.TrimSpace(input.NameEn),
		Role:         role,
		Department:   strings.TrimSpace(input.Department),
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		Bio:          strings.TrimSpace(input.Bio),
		Skills:       skills,
		Social:       social,
		Avatar:       input.Avatar,
		GradientFrom: strings.TrimSpace(input.GradientFrom),
		GradientTo:   strings.TrimSpace(input.GradientTo),
	}, nil
}
