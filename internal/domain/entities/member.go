package entities

import "time"

// SocialPlatform identifies a supported social link platform
type SocialPlatform string

const (
	PlatformGithub    SocialPlatform = "github"
	PlatformLinkedIn  SocialPlatform = "linkedin"
	PlatformTwitter   SocialPlatform = "twitter"
	PlatformInstagram SocialPlatform = "instagram"
)

// SocialPlatforms is the fixed write order for social links. Platforms
// outside this list are dropped on write.
var SocialPlatforms = []SocialPlatform{
	PlatformGithub,
	PlatformLinkedIn,
	PlatformTwitter,
	PlatformInstagram,
}

// IsValidPlatform reports whether p is one of the supported platforms
func IsValidPlatform(p SocialPlatform) bool {
	for _, known := range SocialPlatforms {
		if p == known {
			return true
		}
	}
	return false
}

// Member is the aggregate root for a team business card: profile scalars
// plus owned skills and social links. ID is a URL-safe slug and never
// changes after creation.
type Member struct {
	ID           string                    `json:"id"`
	Name         string                    `json:"name"`
	NameEn       string                    `json:"nameEn"`
	Role         string                    `json:"role"`
	Department   string                    `json:"department"`
	Email        string                    `json:"email"`
	Phone        string                    `json:"phone"`
	Bio          string                    `json:"bio"`
	Skills       []string                  `json:"skills"`
	Social       map[SocialPlatform]string `json:"social"`
	Avatar       string                    `json:"avatar"`
	GradientFrom string                    `json:"gradientFrom"`
	GradientTo   string                    `json:"gradientTo"`
	CreatedAt    time.Time                 `json:"createdAt"`
	UpdatedAt    time.Time                 `json:"updatedAt"`
}

// MemberInput represents a create/update payload. ID may be empty on
// create, in which case one is generated from the display name.
type MemberInput struct {
	ID           string                    `json:"id"`
	Name         string                    `json:"name" binding:"required"`
	NameEn       string                    `json:"nameEn"`
	Role         string                    `json:"role" binding:"required"`
	Department   string                    `json:"department"`
	Email        string                    `json:"email"`
	Phone        string                    `json:"phone"`
	Bio          string                    `json:"bio"`
	Skills       []string                  `json:"skills"`
	Social       map[SocialPlatform]string `json:"social"`
	Avatar       string                    `json:"avatar"`
	GradientFrom string                    `json:"gradientFrom"`
	GradientTo   string                    `json:"gradientTo"`
}
