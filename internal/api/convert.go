package api

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/elskow/tasktrack/internal/storage"
	pb "github.com/elskow/tasktrack/proto/gen/tasktrack"
)

const TokenTypeBearer = "Bearer"

func timestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

// NewUser builds the public view of u. The password hash never leaves the
// service.
func NewUser(u *storage.User) *pb.User {
	if u == nil {
		return nil
	}
	return &pb.User{
		Id:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        u.Role,
		Preferences: NewPreferences(u.Preferences),
		LastLogin:   timestamp(u.LastLogin),
		CreatedAt:   timestamppb.New(u.CreatedAt),
		UpdatedAt:   timestamppb.New(u.UpdatedAt),
	}
}

func NewPreferences(p storage.Preferences) *pb.Preferences {
	return &pb.Preferences{
		Theme: p.Theme,
		Notifications: &pb.Notifications{
			Email:     p.Notifications.Email,
			Push:      p.Notifications.Push,
			Reminders: p.Notifications.Reminders,
		},
		TimeZone: p.TimeZone,
	}
}

func NewTask(t *storage.Task) *pb.Task {
	if t == nil {
		return nil
	}
	return &pb.Task{
		Id:          t.ID,
		User:        t.Owner,
		Title:       t.Title,
		Description: t.Description,
		Position:    int32(t.Position),
		Completed:   t.Completed,
		CompletedAt: timestamp(t.CompletedAt),
		CreatedAt:   timestamppb.New(t.CreatedAt),
		UpdatedAt:   timestamppb.New(t.UpdatedAt),
	}
}

func NewStorageInfo(info storage.Info) *pb.StorageInfo {
	return &pb.StorageInfo{
		Kind:       info.Kind,
		Host:       info.Host,
		Database:   info.Database,
		Connection: info.Connection,
	}
}

func NewStorageStats(stats storage.Stats) *pb.StorageStats {
	return &pb.StorageStats{
		Users: stats.Users,
		Tasks: stats.Tasks,
	}
}
