package models

import "time"

// CreatorStatus is the closed set of states a creator application can be in.
// The legacy data kept these as free-text labels; only the transitions below
// are legal, everything else is rejected as a validation fault.
type CreatorStatus string

const (
	CreatorStatusUnapplied = CreatorStatus("unapplied")
	CreatorStatusPending   = CreatorStatus("pending")
	CreatorStatusApproved  = CreatorStatus("approved")
	CreatorStatusRejected  = CreatorStatus("rejected")
)

var creatorStatusTransitions = map[CreatorStatus][]CreatorStatus{
	CreatorStatusUnapplied: {CreatorStatusPending},
	CreatorStatusPending:   {CreatorStatusApproved, CreatorStatusRejected},
	CreatorStatusApproved:  {},
	CreatorStatusRejected:  {CreatorStatusPending},
}

func (v CreatorStatus) CanTransition(next CreatorStatus) bool {
	for _, status := range creatorStatusTransitions[v] {
		if status == next {
			return true
		}
	}
	return false
}

type User struct {
	BaseModel

	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Nick     string `json:"nick"`

	Height    int    `json:"height"`
	Weight    int    `json:"weight"`
	Instagram string `json:"instagram"`
	Job       string `json:"job"`
	IntroMsg  string `json:"intro_msg"`

	// BlueChecked marks a verified creator. It is only ever flipped by the
	// back office, never by this service.
	BlueChecked   bool          `json:"blue_checked"`
	CreatorStatus CreatorStatus `json:"creator_status" gorm:"default:unapplied"`
	AppliedAt     *time.Time    `json:"applied_at"`

	Photo *Photo `json:"photo" gorm:"foreignKey:UserID"`
}
