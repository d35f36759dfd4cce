package storage

import (
	"encoding/json"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

type Notifications struct {
	Email     bool `json:"email" bson:"email"`
	Push      bool `json:"push" bson:"push"`
	Reminders bool `json:"reminders" bson:"reminders"`
}

type Preferences struct {
	Theme         string        `json:"theme" bson:"theme"`
	Notifications Notifications `json:"notifications" bson:"notifications"`
	TimeZone      string        `json:"timeZone" bson:"time_zone"`
}

// DefaultPreferences are assigned to every newly registered user.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme: ThemeLight,
		Notifications: Notifications{
			Email:     true,
			Push:      false,
			Reminders: true,
		},
		TimeZone: "UTC",
	}
}

// LockoutState is the persisted half of the account lockout state machine.
// Attempts and LockUntil are always written together.
type LockoutState struct {
	Attempts  int        `json:"loginAttempts"`
	LockUntil *time.Time `json:"lockUntil,omitempty"`
}

// Locked reports whether the lock is still in force at now.
func (s LockoutState) Locked(now time.Time) bool {
	return s.LockUntil != nil && now.Before(*s.LockUntil)
}

type User struct {
	ID           string       `json:"_id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"password"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Role         string       `json:"role"`
	Lockout      LockoutState `json:"-"`
	LastLogin    *time.Time   `json:"lastLogin,omitempty"`
	Preferences  Preferences  `json:"preferences"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// MarshalJSON stores the lockout state as top-level loginAttempts and
// lockUntil fields, the same logical layout as the document backend.
func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return json.Marshal(struct {
		plain
		LoginAttempts int        `json:"loginAttempts"`
		LockUntil     *time.Time `json:"lockUntil,omitempty"`
	}{plain(u), u.Lockout.Attempts, u.Lockout.LockUntil})
}

func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	var doc struct {
		plain
		LoginAttempts int        `json:"loginAttempts"`
		LockUntil     *time.Time `json:"lockUntil"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*u = User(doc.plain)
	u.Lockout = LockoutState{Attempts: doc.LoginAttempts, LockUntil: doc.LockUntil}
	return nil
}

// IsLocked reports whether the account is locked at now.
func (u *User) IsLocked(now time.Time) bool {
	return u.Lockout.Locked(now)
}

// UserUpdate carries the fields UpdateUser should change. Nil fields are left
// untouched.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	PasswordHash *string
	Preferences  *Preferences
	LastLogin    *time.Time
	Lockout      *LockoutState
}

// Apply writes the non-nil fields of upd onto u.
func (upd UserUpdate) Apply(u *User) {
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	if upd.Preferences != nil {
		u.Preferences = *upd.Preferences
	}
	if upd.LastLogin != nil {
		lastLogin := *upd.LastLogin
		u.LastLogin = &lastLogin
	}
	if upd.Lockout != nil {
		u.Lockout = *upd.Lockout
	}
}

// UnsetPosition marks a task that has not been placed in its owner's ordering.
const UnsetPosition = 0

type Task struct {
	ID          string     `json:"_id"`
	Owner       string     `json:"user"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Position    int        `json:"position"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// OwnerID implements the ownership contract used by request guards.
func (t *Task) OwnerID() string {
	return t.Owner
}

// TaskUpdate carries the fields UpdateTask should change. Nil fields are left
// untouched; ClearCompletedAt removes the completion timestamp.
type TaskUpdate struct {
	Title            *string
	Description      *string
	Position         *int
	Completed        *bool
	CompletedAt      *time.Time
	ClearCompletedAt bool
}

// Apply writes the non-nil fields of upd onto t.
func (upd TaskUpdate) Apply(t *Task) {
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.Position != nil {
		t.Position = *upd.Position
	}
	if upd.Completed != nil {
		t.Completed = *upd.Completed
	}
	if upd.CompletedAt != nil {
		completedAt := *upd.CompletedAt
		t.CompletedAt = &completedAt
	}
	if upd.ClearCompletedAt {
		t.CompletedAt = nil
	}
}

// ShiftRange selects an owner's tasks whose positions lie in [From, To],
// except the task identified by Except, and moves each by Delta.
type ShiftRange struct {
	Owner  string
	From   int
	To     int
	Delta  int
	Except string
}

// Contains reports whether the task falls inside the range.
func (r ShiftRange) Contains(t *Task) bool {
	return t.Owner == r.Owner &&
		t.ID != r.Except &&
		t.Position >= r.From &&
		t.Position <= r.To
}
