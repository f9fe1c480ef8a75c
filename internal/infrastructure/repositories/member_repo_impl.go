package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"paletto-cards.backend/internal/domain/entities"
	domainerrors "paletto-cards.backend/internal/domain/errors"
	"paletto-cards.backend/internal/infrastructure/models"
)

// MemberRepository implements the member aggregate over the relational
// store: one profile row plus skill and social link child rows.
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// List returns all members in creation order, joining the three relations
// in memory. One query per relation is fine at roster scale.
func (r *MemberRepository) List(ctx context.Context) ([]*entities.Member, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var ms []models.Member
	if err := db.Order("created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	var skills []models.Skill
	if err := db.Order("member_id, position ASC").Find(&skills).Error; err != nil {
		return nil, err
	}

	var socials []models.SocialLink
	if err := db.Find(&socials).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Member, 0, len(ms))
	for i := range ms {
		items = append(items, assembleMember(&ms[i], skills, socials))
	}
	return items, nil
}

// GetByID returns a single member aggregate or ErrNotFound
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*entities.Member, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var m models.Member
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	var skills []models.Skill
	if err := db.Where("member_id = ?", id).Order("position ASC").Find(&skills).Error; err != nil {
		return nil, err
	}

	var socials []models.SocialLink
	if err := db.Where("member_id = ?", id).Find(&socials).Error; err != nil {
		return nil, err
	}

	return assembleMember(&m, skills, socials), nil
}

// Create inserts the profile row and its child rows. Callers run this
// inside UnitOfWork.Do so a child insert failure rolls everything back.
func (r *MemberRepository) Create(ctx context.Context, member *entities.Member) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	now := time.Now()
	if member.CreatedAt.IsZero() {
		member.CreatedAt = now
	}
	member.UpdatedAt = now

	if err := db.Create(toMemberModel(member)).Error; err != nil {
		return err
	}
	return r.insertChildren(db, member)
}

// Update overwrites the scalar profile row and fully replaces both child
// sets (delete then reinsert). Callers run this inside UnitOfWork.Do.
func (r *MemberRepository) Update(ctx context.Context, member *entities.Member) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	member.UpdatedAt = time.Now()
	updates := map[string]interface{}{
		"name":          member.Name,
		"name_en":       member.NameEn,
		"role":          member.Role,
		"department":    member.Department,
		"email":         member.Email,
		"phone":         member.Phone,
		"bio":           member.Bio,
		"avatar":        member.Avatar,
		"gradient_from": member.GradientFrom,
		"gradient_to":   member.GradientTo,
		"updated_at":    member.UpdatedAt,
	}

	result := db.Model(&models.Member{}).Where("id = ?", member.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}

	if err := db.Where("member_id = ?", member.ID).Delete(&models.Skill{}).Error; err != nil {
		return err
	}
	if err := db.Where("member_id = ?", member.ID).Delete(&models.SocialLink{}).Error; err != nil {
		return err
	}
	return r.insertChildren(db, member)
}

// Delete removes the member and cascades to its child rows
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	if err := db.Where("member_id = ?", id).Delete(&models.Skill{}).Error; err != nil {
		return err
	}
	if err := db.Where("member_id = ?", id).Delete(&models.SocialLink{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id).Delete(&models.Member{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *MemberRepository) insertChildren(db *gorm.DB, member *entities.Member) error {
	if rows := toSkillRows(member.ID, member.Skills); len(rows) > 0 {
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
	}
	if rows := toSocialRows(member.ID, member.Social); len(rows) > 0 {
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}
