package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/elskow/tasktrack/internal/storage"
)

type userDocument struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty"`
	Username      string              `bson:"username"`
	Email         string              `bson:"email"`
	Password      string              `bson:"password"`
	FirstName     string              `bson:"firstName"`
	LastName      string              `bson:"lastName"`
	Role          string              `bson:"role"`
	LoginAttempts int                 `bson:"loginAttempts"`
	LockUntil     *time.Time          `bson:"lockUntil"`
	LastLogin     *time.Time          `bson:"lastLogin,omitempty"`
	Preferences   storage.Preferences `bson:"preferences"`
	CreatedAt     time.Time           `bson:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt"`
}

func newUserDocument(u *storage.User) userDocument {
	return userDocument{
		Username:      u.Username,
		Email:         u.Email,
		Password:      u.PasswordHash,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Role:          u.Role,
		LoginAttempts: u.Lockout.Attempts,
		LockUntil:     u.Lockout.LockUntil,
		LastLogin:     u.LastLogin,
		Preferences:   u.Preferences,
	}
}

func (d *userDocument) toUser() *storage.User {
	return &storage.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.Password,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Role:         d.Role,
		Lockout: storage.LockoutState{
			Attempts:  d.LoginAttempts,
			LockUntil: utc(d.LockUntil),
		},
		LastLogin:   utc(d.LastLogin),
		Preferences: d.Preferences,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

type taskDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	User        primitive.ObjectID `bson:"user"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Position    int                `bson:"position"`
	Completed   bool               `bson:"completed"`
	CompletedAt *time.Time         `bson:"completedAt"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *taskDocument) toTask() *storage.Task {
	return &storage.Task{
		ID:          d.ID.Hex(),
		Owner:       d.User.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Position:    d.Position,
		Completed:   d.Completed,
		CompletedAt: utc(d.CompletedAt),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
