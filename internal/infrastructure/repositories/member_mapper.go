package repositories

import (
	"strings"

	"paletto-cards.backend/internal/domain/entities"
	"paletto-cards.backend/internal/infrastructure/models"
)

// toMemberModel flattens the aggregate's scalar fields into a profile row
func toMemberModel(e *entities.Member) *models.Member {
	return &models.Member{
		ID:           e.ID,
		Name:         e.Name,
		NameEn:       e.NameEn,
		Role:         e.Role,
		Department:   e.Department,
		Email:        e.Email,
		Phone:        e.Phone,
		Bio:          e.Bio,
		Avatar:       e.Avatar,
		GradientFrom: e.GradientFrom,
		GradientTo:   e.GradientTo,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// toSkillRows flattens the skill list into one row per non-empty label,
// positions preserving the submitted order.
func toSkillRows(memberID string, skills []string) []models.Skill {
	rows := make([]models.Skill, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		rows = append(rows, models.Skill{
			MemberID:  memberID,
			SkillName: s,
			Position:  len(rows),
		})
	}
	return rows
}

// toSocialRows flattens the social map into rows in the fixed platform
// order. Platforms with an empty URL, and unknown platforms, are dropped.
func toSocialRows(memberID string, social map[entities.SocialPlatform]string) []models.SocialLink {
	rows := make([]models.SocialLink, 0, len(social))
	for _, platform := range entities.SocialPlatforms {
		url := strings.TrimSpace(social[platform])
		if url == "" {
			continue
		}
		rows = append(rows, models.SocialLink{
			MemberID: memberID,
			Platform: string(platform),
			URL:      url,
		})
	}
	return rows
}

// assembleMember reassembles the nested display shape from the three row
// sets. Skill rows are expected in position order; duplicate social rows
// fold with last write winning.
func assembleMember(m *models.Member, skills []models.Skill, socials []models.SocialLink) *entities.Member {
	e := &entities.Member{
		ID:           m.ID,
		Name:         m.Name,
		NameEn:       m.NameEn,
		Role:         m.Role,
		Department:   m.Department,
		Email:        m.Email,
		Phone:        m.Phone,
		Bio:          m.Bio,
		Avatar:       m.Avatar,
		GradientFrom: m.GradientFrom,
		GradientTo:   m.GradientTo,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		Skills:       make([]string, 0, len(skills)),
		Social:       make(map[entities.SocialPlatform]string, len(socials)),
	}
	for _, s := range skills {
		if s.MemberID != m.ID {
			continue
		}
		e.Skills = append(e.Skills, s.SkillName)
	}
	for _, s := range socials {
		if s.MemberID != m.ID {
			continue
		}
		e.Social[entities.SocialPlatform(s.Platform)] = s.URL
	}
	return e
}
