package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elskow/tasktrack/internal/common"
	"github.com/elskow/tasktrack/internal/storage"
)

type users struct {
	db *gorm.DB
}

func (u users) first(ctx context.Context, query string, args ...any) (*storage.User, error) {
	var rec userRecord
	if err := u.db.WithContext(ctx).Where(query, args...).First(&rec).Error; err != nil {
		return nil, translate("find user", err)
	}
	return rec.toUser(), nil
}

func (u users) FindUserByEmail(ctx context.Context, email string) (*storage.User, error) {
	return u.first(ctx, "email = ?", email)
}

func (u users) FindUserByID(ctx context.Context, id string) (*storage.User, error) {
	if !validID(id) {
		return nil, common.ErrNotFound
	}
	return u.first(ctx, "id = ?", id)
}

func (u users) FindUserByUsername(ctx context.Context, username string) (*storage.User, error) {
	return u.first(ctx, "username = ?", username)
}

func (u users) CreateUser(ctx context.Context, user *storage.User) (*storage.User, error) {
	rec := newUserRecord(user)
	rec.ID = uuid.NewString()

	if err := u.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, translate("create user", err)
	}
	return rec.toUser(), nil
}

func (u users) UpdateUser(ctx context.Context, id string, update storage.UserUpdate) (*storage.User, error) {
	if !validID(id) {
		return nil, common.ErrNotFound
	}

	columns, err := userColumns(update)
	if err != nil {
		return nil, err
	}

	res := u.db.WithContext(ctx).Model(&userRecord{}).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		return nil, translate("update user", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, common.ErrNotFound
	}
	return u.FindUserByID(ctx, id)
}

func (u users) DeleteUser(ctx context.Context, id string) error {
	if !validID(id) {
		return common.ErrNotFound
	}

	res := u.db.WithContext(ctx).Where("id = ?", id).Delete(&userRecord{})
	if res.Error != nil {
		return translate("delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func userColumns(update storage.UserUpdate) (map[string]any, error) {
	columns := map[string]any{
		"updated_at": time.Now().UTC(),
	}
	if update.FirstName != nil {
		columns["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		columns["last_name"] = *update.LastName
	}
	if update.PasswordHash != nil {
		columns["password_hash"] = *update.PasswordHash
	}
	if update.Preferences != nil {
		raw, err := json.Marshal(update.Preferences)
		if err != nil {
			return nil, err
		}
		columns["preferences"] = gorm.Expr("?::jsonb", string(raw))
	}
	if update.LastLogin != nil {
		columns["last_login"] = update.LastLogin.UTC()
	}
	if update.Lockout != nil {
		columns["login_attempts"] = update.Lockout.Attempts
		columns["lock_until"] = update.Lockout.LockUntil
	}
	return columns, nil
}

type tasks struct {
	db *gorm.DB
}

func (t tasks) CreateTask(ctx context.Context, task *storage.Task) (*storage.Task, error) {
	rec := newTaskRecord(task)
	rec.ID = uuid.NewString()

	if err := t.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, translate("create task", err)
	}
	return rec.toTask(), nil
}

func (t tasks) FindTaskByID(ctx context.Context, id string) (*storage.Task, error) {
	if !validID(id) {
		return nil, common.ErrNotFound
	}

	var rec taskRecord
	if err := t.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, translate("find task", err)
	}
	return rec.toTask(), nil
}

func (t tasks) FindTasksByOwner(ctx context.Context, owner string) ([]storage.Task, error) {
	if !validID(owner) {
		return nil, nil
	}

	var recs []taskRecord
	err := t.db.WithContext(ctx).
		Where("owner_id = ?", owner).
		Order("position ASC, created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, translate("find tasks", err)
	}

	owned := make([]storage.Task, 0, len(recs))
	for i := range recs {
		owned = append(owned, *recs[i].toTask())
	}
	return owned, nil
}

func (t tasks) MaxPosition(ctx context.Context, owner string) (int, error) {
	if !validID(owner) {
		return 0, nil
	}

	var highest int
	err := t.db.WithContext(ctx).
		Model(&taskRecord{}).
		Where("owner_id = ?", owner).
		Select("COALESCE(MAX(position), 0)").
		Scan(&highest).Error
	if err != nil {
		return 0, translate("max position", err)
	}
	return highest, nil
}

func (t tasks) UpdateTask(ctx context.Context, id string, update storage.TaskUpdate) (*storage.Task, error) {
	if !validID(id) {
		return nil, common.ErrNotFound
	}

	columns := map[string]any{
		"updated_at": time.Now().UTC(),
	}
	if update.Title != nil {
		columns["title"] = *update.Title
	}
	if update.Description != nil {
		columns["description"] = *update.Description
	}
	if update.Position != nil {
		columns["position"] = *update.Position
	}
	if update.Completed != nil {
		columns["completed"] = *update.Completed
	}
	if update.CompletedAt != nil {
		columns["completed_at"] = update.CompletedAt.UTC()
	}
	if update.ClearCompletedAt {
		columns["completed_at"] = nil
	}

	res := t.db.WithContext(ctx).Model(&taskRecord{}).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		return nil, translate("update task", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, common.ErrNotFound
	}
	return t.FindTaskByID(ctx, id)
}

func (t tasks) ShiftPositions(ctx context.Context, r storage.ShiftRange) (int64, error) {
	if !validID(r.Owner) {
		return 0, nil
	}

	query := t.db.WithContext(ctx).
		Model(&taskRecord{}).
		Where("owner_id = ? AND position BETWEEN ? AND ?", r.Owner, r.From, r.To)
	if validID(r.Except) {
		query = query.Where("id <> ?", r.Except)
	}

	res := query.UpdateColumns(map[string]any{
		"position":   gorm.Expr("position + ?", r.Delta),
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return 0, translate("shift positions", res.Error)
	}
	return res.RowsAffected, nil
}

func (t tasks) DeleteTask(ctx context.Context, id string) error {
	if !validID(id) {
		return common.ErrNotFound
	}

	res := t.db.WithContext(ctx).Where("id = ?", id).Delete(&taskRecord{})
	if res.Error != nil {
		return translate("delete task", res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (t tasks) DeleteTasksByOwner(ctx context.Context, owner string) (int64, error) {
	if !validID(owner) {
		return 0, nil
	}

	res := t.db.WithContext(ctx).Where("owner_id = ?", owner).Delete(&taskRecord{})
	if res.Error != nil {
		return 0, translate("delete tasks", res.Error)
	}
	return res.RowsAffected, nil
}
