package domain

// Review is a directed peer review between two users.
type Review struct {
	ID         int     `json:"id" db:"id"`
	ReviewerID int     `json:"reviewer_id" db:"reviewer_id"`
	RevieweeID int     `json:"reviewee_id" db:"reviewee_id"`
	Score      int     `json:"score" db:"score"`
	Comment    *string `json:"comment" db:"comment"`
}
