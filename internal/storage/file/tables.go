package file

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/elskow/tasktrack/internal/common"
	"github.com/elskow/tasktrack/internal/storage"
)

// snapshot is one in-memory copy of both documents. It is the storage.Tx
// handed to Atomically callbacks.
type snapshot struct {
	users      []storage.User
	tasks      []storage.Task
	usersDirty bool
	tasksDirty bool
	now        time.Time
	newID      func() string
}

func (s *snapshot) Users() storage.UserStore {
	return userTable{s: s}
}

func (s *snapshot) Tasks() storage.TaskStore {
	return taskTable{s: s}
}

type userTable struct {
	s *snapshot
}

func (t userTable) find(match func(*storage.User) bool) (*storage.User, error) {
	for i := range t.s.users {
		if match(&t.s.users[i]) {
			user := t.s.users[i]
			return &user, nil
		}
	}
	return nil, common.ErrNotFound
}

func (t userTable) index(id string) int {
	return slices.IndexFunc(t.s.users, func(u storage.User) bool {
		return u.ID == id
	})
}

func (t userTable) FindUserByEmail(_ context.Context, email string) (*storage.User, error) {
	return t.find(func(u *storage.User) bool { return u.Email == email })
}

func (t userTable) FindUserByID(_ context.Context, id string) (*storage.User, error) {
	return t.find(func(u *storage.User) bool { return u.ID == id })
}

func (t userTable) FindUserByUsername(_ context.Context, username string) (*storage.User, error) {
	return t.find(func(u *storage.User) bool { return u.Username == username })
}

func (t userTable) CreateUser(_ context.Context, user *storage.User) (*storage.User, error) {
	for i := range t.s.users {
		if t.s.users[i].Email == user.Email {
			return nil, storage.Duplicate("email")
		}
		if t.s.users[i].Username == user.Username {
			return nil, storage.Duplicate("username")
		}
	}

	created := *user
	created.ID = t.s.newID()
	created.CreatedAt = t.s.now
	created.UpdatedAt = t.s.now

	t.s.users = append(t.s.users, created)
	t.s.usersDirty = true
	return &created, nil
}

func (t userTable) UpdateUser(_ context.Context, id string, update storage.UserUpdate) (*storage.User, error) {
	i := t.index(id)
	if i < 0 {
		return nil, common.ErrNotFound
	}

	update.Apply(&t.s.users[i])
	t.s.users[i].UpdatedAt = t.s.now
	t.s.usersDirty = true

	user := t.s.users[i]
	return &user, nil
}

func (t userTable) DeleteUser(_ context.Context, id string) error {
	i := t.index(id)
	if i < 0 {
		return common.ErrNotFound
	}

	t.s.users = slices.Delete(t.s.users, i, i+1)
	t.s.usersDirty = true
	return nil
}

type taskTable struct {
	s *snapshot
}

func (t taskTable) index(id string) int {
	return slices.IndexFunc(t.s.tasks, func(task storage.Task) bool {
		return task.ID == id
	})
}

func (t taskTable) CreateTask(_ context.Context, task *storage.Task) (*storage.Task, error) {
	created := *task
	created.ID = t.s.newID()
	created.CreatedAt = t.s.now
	created.UpdatedAt = t.s.now

	t.s.tasks = append(t.s.tasks, created)
	t.s.tasksDirty = true
	return &created, nil
}

func (t taskTable) FindTaskByID(_ context.Context, id string) (*storage.Task, error) {
	i := t.index(id)
	if i < 0 {
		return nil, common.ErrNotFound
	}
	task := t.s.tasks[i]
	return &task, nil
}

func (t taskTable) FindTasksByOwner(_ context.Context, owner string) ([]storage.Task, error) {
	var owned []storage.Task
	for _, task := range t.s.tasks {
		if task.Owner == owner {
			owned = append(owned, task)
		}
	}

	slices.SortStableFunc(owned, func(a, b storage.Task) int {
		if c := cmp.Compare(a.Position, b.Position); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return owned, nil
}

func (t taskTable) MaxPosition(_ context.Context, owner string) (int, error) {
	highest := 0
	for _, task := range t.s.tasks {
		if task.Owner == owner && task.Position > highest {
			highest = task.Position
		}
	}
	return highest, nil
}

func (t taskTable) UpdateTask(_ context.Context, id string, update storage.TaskUpdate) (*storage.Task, error) {
	i := t.index(id)
	if i < 0 {
		return nil, common.ErrNotFound
	}

	update.Apply(&t.s.tasks[i])
	t.s.tasks[i].UpdatedAt = t.s.now
	t.s.tasksDirty = true

	task := t.s.tasks[i]
	return &task, nil
}

func (t taskTable) ShiftPositions(_ context.Context, r storage.ShiftRange) (int64, error) {
	var shifted int64
	for i := range t.s.tasks {
		if !r.Contains(&t.s.tasks[i]) {
			continue
		}
		t.s.tasks[i].Position += r.Delta
		t.s.tasks[i].UpdatedAt = t.s.now
		shifted++
	}
	if shifted > 0 {
		t.s.tasksDirty = true
	}
	return shifted, nil
}

func (t taskTable) DeleteTask(_ context.Context, id string) error {
	i := t.index(id)
	if i < 0 {
		return common.ErrNotFound
	}

	t.s.tasks = slices.Delete(t.s.tasks, i, i+1)
	t.s.tasksDirty = true
	return nil
}

func (t taskTable) DeleteTasksByOwner(_ context.Context, owner string) (int64, error) {
	before := len(t.s.tasks)
	t.s.tasks = slices.DeleteFunc(t.s.tasks, func(task storage.Task) bool {
		return task.Owner == owner
	})

	deleted := int64(before - len(t.s.tasks))
	if deleted > 0 {
		t.s.tasksDirty = true
	}
	return deleted, nil
}

// users and tasks run each call as its own unit of work.
type users struct {
	b *Backend
}

func (u users) run(ctx context.Context, fn func(ctx context.Context, store storage.UserStore) error) error {
	return u.b.Atomically(ctx, func(ctx context.Context, tx storage.Tx) error {
		return fn(ctx, tx.Users())
	})
}

func (u users) FindUserByEmail(ctx context.Context, email string) (user *storage.User, err error) {
	err = u.run(ctx, func(ctx context.Context, store storage.UserStore) error {
		user, err = store.FindUserByEmail(ctx, email)
		return err
	})
	return user, err
}

func (u users) FindUserByID(ctx context.Context, id string) (user *storage.User, err error) {
	err = u.run(ctx, func(ctx context.Context, store storage.UserStore) error {
		user, err = store.FindUserByID(ctx, id)
		return err
	})
	return user, err
}

func (u users) FindUserByUsername(ctx context.Context, username string) (user *storage.User, err error) {
	err = u.run(ctx, func(ctx context.Context, store storage.UserStore) error {
		user, err = store.FindUserByUsername(ctx, username)
		return err
	})
	return user, err
}

func (u users) CreateUser(ctx context.Context, in *storage.User) (user *storage.User, err error) {
	err = u.run(ctx, func(ctx context.Context, store storage.UserStore) error {
		user, err = store.CreateUser(ctx, in)
		return err
	})
	return user, err
}

func (u users) UpdateUser(ctx context.Context, id string, update storage.UserUpdate) (user *storage.User, err error) {
	err = u.run(ctx, func(ctx context.Context, store storage.UserStore) error {
		user, err = store.UpdateUser(ctx, id, update)
		return err
	})
	return user, err
}

func (u users) DeleteUser(ctx context.Context, id string) error {
	return u.run(ctx, func(ctx context.Context, store storage.UserStore) error {
		return store.DeleteUser(ctx, id)
	})
}

type tasks struct {
	b *Backend
}

func (t tasks) run(ctx context.Context, fn func(ctx context.Context, store storage.TaskStore) error) error {
	return t.b.Atomically(ctx, func(ctx context.Context, tx storage.Tx) error {
		return fn(ctx, tx.Tasks())
	})
}

func (t tasks) CreateTask(ctx context.Context, in *storage.Task) (task *storage.Task, err error) {
	err = t.run(ctx, func(ctx context.Context, store storage.TaskStore) error {
		task, err = store.CreateTask(ctx, in)
		return err
	})
	return task, err
}

func (t tasks) FindTaskByID(ctx context.Context, id string) (task *storage.Task, err error) {
	err = t.run(ctx, func(ctx context.Context, store storage.TaskStore) error {
		task, err = store.FindTaskByID(ctx, id)
		return err
	})
	return task, err
}

func (t tasks) FindTasksByOwner(ctx context.Context, owner string) (owned []storage.Task, err error) {
	err = t.run(ctx, func(ctx context.Context, store storage.TaskStore) error {
		owned, err = store.FindTasksByOwner(ctx, owner)
		return err
	})
	return owned, err
}

func (t tasks) MaxPosition(ctx context.Context, owner string) (highest int, err error) {
	err = t.run(ctx, func(ctx context.Context, store storage.TaskStore) error {
		highest, err = store.MaxPosition(ctx, owner)
		return err
	})
	return highest, err
}

func (t tasks) UpdateTask(ctx context.Context, id string, update storage.TaskUpdate) (task *storage.Task, err error) {
	err = t.run(ctx, func(ctx context.Context, store storage.TaskStore) error {
		task, err = store.UpdateTask(ctx, id, update)
		return err
	})
	return task, err
}

func (t tasks) ShiftPositions(ctx context.Context, r storage.ShiftRange) (shifted int64, err error) {
	err = t.run(ctx, func(ctx context.Context, store storage.TaskStore) error {
		shifted, err = store.ShiftPositions(ctx, r)
		return err
	})
	return shifted, err
}

func (t tasks) DeleteTask(ctx context.Context, id string) error {
	return t.run(ctx, func(ctx context.Context, store storage.TaskStore) error {
		return store.DeleteTask(ctx, id)
	})
}

func (t tasks) DeleteTasksByOwner(ctx context.Context, owner string) (deleted int64, err error) {
	err = t.run(ctx, func(ctx context.Context, store storage.TaskStore) error {
		deleted, err = store.DeleteTasksByOwner(ctx, owner)
		return err
	})
	return deleted, err
}
