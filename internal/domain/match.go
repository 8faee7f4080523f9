package domain

// MatchStatus is the lifecycle state of a match request.
type MatchStatus string

const (
	MatchPending  MatchStatus = "Pending"
	MatchAccepted MatchStatus = "Accepted"
	MatchRejected MatchStatus = "Rejected"
	MatchIgnored  MatchStatus = "Ignored"
)

func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchPending, MatchAccepted, MatchRejected, MatchIgnored:
		return true
	}
	return false
}

// IsTerminal reports whether the status absorbs further transitions.
func (s MatchStatus) IsTerminal() bool {
	return s == MatchAccepted || s == MatchRejected || s == MatchIgnored
}

// Match is a directed connection request between two users.
type Match struct {
	ID     int         `json:"match_id" db:"match_id"`
	FromID int         `json:"match_from_id" db:"match_from_id"`
	ToID   int         `json:"match_to_id" db:"match_to_id"`
	Status MatchStatus `json:"match_status" db:"match_status"`
}

func (m *Match) HasUser(userID int) bool {
	return m.FromID == userID || m.ToID == userID
}
