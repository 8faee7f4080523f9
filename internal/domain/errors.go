package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrInvalidCredentials = errors.New("bad email or password")
	ErrNoUsersFound       = errors.New("no users found")
	ErrNothingToUpdate    = errors.New("no fields were updated")

	ErrSkillNotFound     = errors.New("skill not found")
	ErrSkillExists       = errors.New("skill already added")
	ErrSkillLimitReached = errors.New("cannot add more than 5 skills")
	ErrInvalidSkill      = errors.New("invalid skill category")

	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchExists        = errors.New("match request already exists")
	ErrMatchForbidden     = errors.New("not a participant of this match")
	ErrMatchFinalized     = errors.New("match status can no longer change")
	ErrInvalidMatchStatus = errors.New("invalid match status")
	ErrSelfMatch          = errors.New("cannot match with yourself")

	ErrReviewNotFound  = errors.New("review not found")
	ErrReviewExists    = errors.New("review already exists between these users")
	ErrReviewForbidden = errors.New("can only modify your own reviews")
	ErrSelfReview      = errors.New("cannot review yourself")
	ErrNoReviewsFound  = errors.New("no reviews found for this user")

	ErrInvalidToken      = errors.New("invalid token")
	ErrResetTokenInvalid = errors.New("invalid or expired reset token")
)

// ValidationError carries the first violated input rule back to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
