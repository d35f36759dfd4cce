package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/elskow/tasktrack/internal/common"
	"github.com/elskow/tasktrack/internal/storage"
)

type users struct {
	coll *mongo.Collection
	now  func() time.Time
}

func (u users) findOne(ctx context.Context, filter bson.M) (*storage.User, error) {
	var doc userDocument
	if err := u.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate("find user", err)
	}
	return doc.toUser(), nil
}

func (u users) FindUserByEmail(ctx context.Context, email string) (*storage.User, error) {
	return u.findOne(ctx, bson.M{"email": email})
}

func (u users) FindUserByID(ctx context.Context, id string) (*storage.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return u.findOne(ctx, bson.M{"_id": oid})
}

func (u users) FindUserByUsername(ctx context.Context, username string) (*storage.User, error) {
	return u.findOne(ctx, bson.M{"username": username})
}

func (u users) CreateUser(ctx context.Context, user *storage.User) (*storage.User, error) {
	doc := newUserDocument(user)
	doc.CreatedAt = u.now()
	doc.UpdatedAt = doc.CreatedAt

	res, err := u.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, translate("create user", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, storage.Unavailable("create user", fmt.Errorf("unexpected id type %T", res.InsertedID))
	}
	doc.ID = oid
	return doc.toUser(), nil
}

func (u users) UpdateUser(ctx context.Context, id string, update storage.UserUpdate) (*storage.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	set := bson.M{"updatedAt": u.now()}
	if update.FirstName != nil {
		set["firstName"] = *update.FirstName
	}
	if update.LastName != nil {
		set["lastName"] = *update.LastName
	}
	if update.PasswordHash != nil {
		set["password"] = *update.PasswordHash
	}
	if update.Preferences != nil {
		set["preferences"] = *update.Preferences
	}
	if update.LastLogin != nil {
		set["lastLogin"] = update.LastLogin.UTC()
	}
	if update.Lockout != nil {
		set["loginAttempts"] = update.Lockout.Attempts
		set["lockUntil"] = update.Lockout.LockUntil
	}

	var doc userDocument
	err = u.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, translate("update user", err)
	}
	return doc.toUser(), nil
}

func (u users) DeleteUser(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrNotFound
	}

	res, err := u.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return translate("delete user", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

type tasks struct {
	coll *mongo.Collection
	now  func() time.Time
}

func ownerID(owner string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(owner)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: owner id %q", common.ErrValidation, owner)
	}
	return oid, nil
}

func (t tasks) CreateTask(ctx context.Context, task *storage.Task) (*storage.Task, error) {
	owner, err := ownerID(task.Owner)
	if err != nil {
		return nil, err
	}

	now := t.now()
	doc := taskDocument{
		User:        owner,
		Title:       task.Title,
		Description: task.Description,
		Position:    task.Position,
		Completed:   task.Completed,
		CompletedAt: task.CompletedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := t.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, translate("create task", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, storage.Unavailable("create task", fmt.Errorf("unexpected id type %T", res.InsertedID))
	}
	doc.ID = oid
	return doc.toTask(), nil
}

func (t tasks) FindTaskByID(ctx context.Context, id string) (*storage.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	var doc taskDocument
	if err := t.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translate("find task", err)
	}
	return doc.toTask(), nil
}

func (t tasks) FindTasksByOwner(ctx context.Context, owner string) ([]storage.Task, error) {
	oid, err := primitive.ObjectIDFromHex(owner)
	if err != nil {
		return nil, nil
	}

	cursor, err := t.coll.Find(ctx,
		bson.M{"user": oid},
		options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "createdAt", Value: 1}}),
	)
	if err != nil {
		return nil, translate("find tasks", err)
	}

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translate("find tasks", err)
	}

	owned := make([]storage.Task, 0, len(docs))
	for i := range docs {
		owned = append(owned, *docs[i].toTask())
	}
	return owned, nil
}

func (t tasks) MaxPosition(ctx context.Context, owner string) (int, error) {
	oid, err := primitive.ObjectIDFromHex(owner)
	if err != nil {
		return 0, nil
	}

	var doc taskDocument
	err = t.coll.FindOne(ctx,
		bson.M{"user": oid},
		options.FindOne().SetSort(bson.D{{Key: "position", Value: -1}}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, translate("max position", err)
	}
	return doc.Position, nil
}

func (t tasks) UpdateTask(ctx context.Context, id string, update storage.TaskUpdate) (*storage.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	set := bson.M{"updatedAt": t.now()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Position != nil {
		set["position"] = *update.Position
	}
	if update.Completed != nil {
		set["completed"] = *update.Completed
	}
	if update.CompletedAt != nil {
		set["completedAt"] = update.CompletedAt.UTC()
	}
	if update.ClearCompletedAt {
		set["completedAt"] = nil
	}

	var doc taskDocument
	err = t.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, translate("update task", err)
	}
	return doc.toTask(), nil
}

func (t tasks) ShiftPositions(ctx context.Context, r storage.ShiftRange) (int64, error) {
	owner, err := primitive.ObjectIDFromHex(r.Owner)
	if err != nil {
		return 0, nil
	}

	filter := bson.M{
		"user":     owner,
		"position": bson.M{"$gte": r.From, "$lte": r.To},
	}
	if except, err := primitive.ObjectIDFromHex(r.Except); err == nil {
		filter["_id"] = bson.M{"$ne": except}
	}

	res, err := t.coll.UpdateMany(ctx, filter, bson.M{
		"$inc": bson.M{"position": r.Delta},
		"$set": bson.M{"updatedAt": t.now()},
	})
	if err != nil {
		return 0, translate("shift positions", err)
	}
	return res.ModifiedCount, nil
}

func (t tasks) DeleteTask(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrNotFound
	}

	res, err := t.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return translate("delete task", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (t tasks) DeleteTasksByOwner(ctx context.Context, owner string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(owner)
	if err != nil {
		return 0, nil
	}

	res, err := t.coll.DeleteMany(ctx, bson.M{"user": oid})
	if err != nil {
		return 0, translate("delete tasks", err)
	}
	return res.DeletedCount, nil
}
