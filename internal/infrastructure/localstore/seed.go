package localstore

import (
	"time"

	"paletto-cards.backend/internal/domain/entities"
)

// rosterEpoch anchors the seed members' creation times so listing order
// is stable across re-seeds.
var rosterEpoch = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

// DefaultRoster returns the roster the store is seeded with when no blob
// exists yet or the existing one is corrupt.
func DefaultRoster() []*entities.Member {
	seed := []*entities.Member{
		{
			ID:         "kim-minjun",
			Name:       "김민준",
			NameEn:     "Minjun Kim",
			Role:       "Team Lead & Full-Stack Developer",
			Department: "Engineering",
			Email:      "minjun@paletto.team",
			Phone:      "+82 10-1234-5678",
			Bio:        "사용자 경험을 최우선으로 생각하는 개발자입니다. 새로운 기술을 탐구하고 팀과 함께 성장하는 것을 좋아합니다.",
			Skills:     []string{"React", "Next.js", "TypeScript", "Node.js", "PostgreSQL"},
			Social: map[entities.SocialPlatform]string{
				entities.PlatformGithub:   "https://github.com",
				entities.PlatformLinkedIn: "https://linkedin.com",
			},
			Avatar:       "👨‍💻",
			GradientFrom: "#87CEEB",
			GradientTo:   "#5DADE2",
		},
		{
			ID:         "lee-suji",
			Name:       "이수지",
			NameEn:     "Suji Lee",
			Role:       "UI/UX Designer",
			Department: "Design",
			Email:      "suji@paletto.team",
			Phone:      "+82 10-2345-6789",
			Bio:        "아름다움과 기능성의 조화를 추구하는 디자이너입니다. 사용자의 마음을 읽는 디자인을 만들어갑니다.",
			Skills:     []string{"Figma", "Adobe XD", "Illustrator", "Photoshop", "Prototyping"},
			Social: map[entities.SocialPlatform]string{
				entities.PlatformInstagram: "https://instagram.com",
				entities.PlatformLinkedIn:  "https://linkedin.com",
			},
			Avatar:       "👩‍🎨",
			GradientFrom: "#B0E0E6",
			GradientTo:   "#87CEEB",
		},
		{
			ID:         "park-jihoon",
			Name:       "박지훈",
			NameEn:     "Jihoon Park",
			Role:       "Backend Developer",
			Department: "Engineering",
			Email:      "jihoon@paletto.team",
			Phone:      "+82 10-3456-7890",
			Bio:        "안정적이고 확장 가능한 시스템 구축을 목표로 합니다. 문제 해결에 열정을 가지고 있습니다.",
			Skills:     []string{"Python", "Django", "AWS", "Docker", "Kubernetes"},
			Social: map[entities.SocialPlatform]string{
				entities.PlatformGithub:  "https://github.com",
				entities.PlatformTwitter: "https://twitter.com",
			},
			Avatar:       "👨‍🔧",
			GradientFrom: "#5DADE2",
			GradientTo:   "#3498DB",
		},
		{
			ID:         "choi-yuna",
			Name:       "최유나",
			NameEn:     "Yuna Choi",
			Role:       "Frontend Developer",
			Department: "Engineering",
			Email:      "yuna@paletto.team",
			Phone:      "+82 10-4567-8901",
			Bio:        "인터랙티브하고 접근성 높은 웹 경험을 만드는 것을 좋아합니다. 디테일에 강합니다.",
			Skills:     []string{"Vue.js", "React", "CSS", "Animation", "Accessibility"},
			Social: map[entities.SocialPlatform]string{
				entities.PlatformGithub:   "https://github.com",
				entities.PlatformLinkedIn: "https://linkedin.com",
			},
			Avatar:       "👩‍💻",
			GradientFrom: "#E0F4FF",
			GradientTo:   "#B0E0E6",
		},
		{
			ID:         "jung-dohyun",
			Name:       "정도현",
			NameEn:     "Dohyun Jung",
			Role:       "Product Manager",
			Department: "Product",
			Email:      "dohyun@paletto.team",
			Phone:      "+82 10-5678-9012",
			Bio:        "사용자와 비즈니스 사이의 다리 역할을 합니다. 데이터 기반 의사결정을 지향합니다.",
			Skills:     []string{"Product Strategy", "Agile", "Data Analysis", "User Research", "Jira"},
			Social: map[entities.SocialPlatform]string{
				entities.PlatformLinkedIn: "https://linkedin.com",
				entities.PlatformTwitter:  "https://twitter.com",
			},
			Avatar:       "👨‍💼",
			GradientFrom: "#87CEEB",
			GradientTo:   "#B0E0E6",
		},
		{
			ID:         "han-soyeon",
			Name:       "한소연",
			NameEn:     "Soyeon Han",
			Role:       "DevOps Engineer",
			Department: "Infrastructure",
			Email:      "soyeon@paletto.team",
			Phone:      "+82 10-6789-0123",
			Bio:        "효율적인 개발 환경과 안정적인 서비스 운영을 위해 노력합니다. 자동화의 힘을 믿습니다.",
			Skills:     []string{"CI/CD", "Terraform", "Monitoring", "Linux", "Cloud Architecture"},
			Social: map[entities.SocialPlatform]string{
				entities.PlatformGithub:   "https://github.com",
				entities.PlatformLinkedIn: "https://linkedin.com",
			},
			Avatar:       "👩‍🔬",
			GradientFrom: "#B0E0E6",
			GradientTo:   "#5DADE2",
		},
	}

	for i, m := range seed {
		m.CreatedAt = rosterEpoch.Add(time.Duration(i) * time.Minute)
		m.UpdatedAt = m.CreatedAt
	}
	return seed
}
