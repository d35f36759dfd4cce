package postgres

import (
	"time"

	"github.com/elskow/tasktrack/internal/storage"
)

type userRecord struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	Username      string `gorm:"uniqueIndex;not null"`
	Email         string `gorm:"uniqueIndex;not null"`
	PasswordHash  string `gorm:"not null"`
	FirstName     string `gorm:"not null"`
	LastName      string `gorm:"not null"`
	Role          string `gorm:"not null"`
	LoginAttempts int    `gorm:"not null"`
	LockUntil     *time.Time
	LastLogin     *time.Time
	Preferences   storage.Preferences `gorm:"serializer:json;type:jsonb;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (userRecord) TableName() string {
	return "users"
}

func newUserRecord(u *storage.User) userRecord {
	return userRecord{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Role:          u.Role,
		LoginAttempts: u.Lockout.Attempts,
		LockUntil:     u.Lockout.LockUntil,
		LastLogin:     u.LastLogin,
		Preferences:   u.Preferences,
	}
}

func (r *userRecord) toUser() *storage.User {
	return &storage.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Role:         r.Role,
		Lockout: storage.LockoutState{
			Attempts:  r.LoginAttempts,
			LockUntil: utc(r.LockUntil),
		},
		LastLogin:   utc(r.LastLogin),
		Preferences: r.Preferences,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

type taskRecord struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	OwnerID     string `gorm:"type:uuid;not null;index:idx_tasks_owner_position,priority:1"`
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	Position    int    `gorm:"not null;index:idx_tasks_owner_position,priority:2"`
	Completed   bool   `gorm:"not null"`
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (taskRecord) TableName() string {
	return "tasks"
}

func newTaskRecord(t *storage.Task) taskRecord {
	return taskRecord{
		ID:          t.ID,
		OwnerID:     t.Owner,
		Title:       t.Title,
		Description: t.Description,
		Position:    t.Position,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
	}
}

func (r *taskRecord) toTask() *storage.Task {
	return &storage.Task{
		ID:          r.ID,
		Owner:       r.OwnerID,
		Title:       r.Title,
		Description: r.Description,
		Position:    r.Position,
		Completed:   r.Completed,
		CompletedAt: utc(r.CompletedAt),
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
