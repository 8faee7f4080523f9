package domain

type User struct {
	ID          int     `json:"id" db:"id"`
	Email       string  `json:"email" db:"email"`
	Password    string  `json:"-" db:"password"`
	IsActive    bool    `json:"is_active" db:"is_active"`
	Name        *string `json:"name" db:"name"`
	LastName    *string `json:"last_name" db:"last_name"`
	Location    *string `json:"location" db:"location"`
	Language    *string `json:"language" db:"language"`
	Gender      *string `json:"gender" db:"gender"`
	ProfilePic  *string `json:"profile_pic" db:"profile_pic"`
	Description *string `json:"description" db:"description"`
	Phone       *string `json:"phone" db:"phone"`
}

// BestSharer is a user joined with its recomputed average review score.
type BestSharer struct {
	User
	MediaAverage float64 `json:"average_score" db:"media_average"`
}
