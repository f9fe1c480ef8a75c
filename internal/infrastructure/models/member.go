package models

import (
	"time"
)

// Member is the scalar profile row. The primary key is the URL-safe slug
// generated (or supplied) at creation time.
type Member struct {
	ID           string `gorm:"type:varchar(120);primaryKey"`
	Name         string `gorm:"type:varchar(120);not null"`
	NameEn       string `gorm:"type:varchar(120)"`
	Role         string `gorm:"type:varchar(120);not null"`
	Department   string `gorm:"type:varchar(120)"`
	Email        string `gorm:"type:varchar(255)"`
	Phone        string `gorm:"type:varchar(50)"`
	Bio          string `gorm:"type:text"`
	Avatar       string `gorm:"type:varchar(32)"`
	GradientFrom string `gorm:"type:varchar(16)"`
	GradientTo   string `gorm:"type:varchar(16)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Member) TableName() string { return "members" }

// Skill is one skill label owned by a member. Position preserves the
// array order of the submitted skill list across backends that do not
// guarantee insertion order.
type Skill struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	MemberID  string `gorm:"type:varchar(120);not null;index"`
	SkillName string `gorm:"type:varchar(120);not null"`
	Position  int    `gorm:"not null;default:0"`
}

func (Skill) TableName() string { return "skills" }

// SocialLink is one platform link owned by a member, at most one row per
// platform per member.
type SocialLink struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	MemberID string `gorm:"type:varchar(120);not null;index;uniqueIndex:idx_social_member_platform"`
	Platform string `gorm:"type:varchar(20);not null;uniqueIndex:idx_social_member_platform"`
	URL      string `gorm:"type:text;not null"`
}

func (SocialLink) TableName() string { return "social_links" }
