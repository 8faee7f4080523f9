package domain

// SkillName is one of the fixed skill categories.
type SkillName string

const (
	SkillCooking   SkillName = "Cooking"
	SkillSports    SkillName = "Sports"
	SkillMusic     SkillName = "Music"
	SkillLanguages SkillName = "Languages"
	SkillArt       SkillName = "Art"
	SkillOthers    SkillName = "Others"
)

// MaxSkillsPerUser caps how many skill tags a single user can hold.
const MaxSkillsPerUser = 5

func (s SkillName) IsValid() bool {
	switch s {
	case SkillCooking, SkillSports, SkillMusic, SkillLanguages, SkillArt, SkillOthers:
		return true
	}
	return false
}

type Skill struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"user_id" db:"user_id"`
	SkillName   SkillName `json:"skill_name" db:"skill_name"`
	Description *string   `json:"description" db:"description"`
}
