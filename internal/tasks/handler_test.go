package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/elskow/tasktrack/internal/auth"
	"github.com/elskow/tasktrack/internal/storage/storagetest"
	pb "github.com/elskow/tasktrack/proto/gen/tasktrack"
)

func TestHandler(t *testing.T) {
	env := newTestEnv(t)
	h := NewHandler(env.service, zaptest.NewLogger(t))
	ctx := auth.ContextWithUser(context.Background(), env.owner)

	var ids []string
	for _, title := range []string{"A", "B", "C"} {
		resp, err := h.CreateTask(ctx, &pb.CreateTaskRequest{Title: title})
		require.NoError(t, err)
		assert.Equal(t, env.owner.ID, resp.GetTask().GetUser())
		ids = append(ids, resp.GetTask().GetId())
	}

	moved, err := h.MoveTask(ctx, &pb.MoveTaskRequest{Id: ids[2], Position: 1})
	require.NoError(t, err)
	assert.Equal(t, int32(1), moved.GetTask().GetPosition())

	list, err := h.ListTasks(ctx, &pb.ListTasksRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetTasks(), 3)
	assert.Equal(t, "C", list.GetTasks()[0].GetTitle())

	toggled, err := h.ToggleTask(ctx, &pb.ToggleTaskRequest{Id: ids[0]})
	require.NoError(t, err)
	assert.True(t, toggled.GetTask().GetCompleted())
	assert.NotNil(t, toggled.GetTask().GetCompletedAt())

	got, err := h.GetTask(ctx, &pb.GetTaskRequest{Id: ids[0]})
	require.NoError(t, err)
	assert.True(t, got.GetTask().GetCompleted())

	_, err = h.DeleteTask(ctx, &pb.DeleteTaskRequest{Id: ids[1]})
	require.NoError(t, err)

	stranger := storagetest.MustCreateUser(t, env.backend, "stranger")
	strangerCtx := auth.ContextWithUser(context.Background(), stranger)

	tests := []struct {
		name     string
		call     func() error
		wantCode codes.Code
	}{
		{
			name: "anonymous list",
			call: func() error {
				_, err := h.ListTasks(context.Background(), &pb.ListTasksRequest{})
				return err
			},
			wantCode: codes.Unauthenticated,
		},
		{
			name: "empty title",
			call: func() error {
				_, err := h.CreateTask(ctx, &pb.CreateTaskRequest{})
				return err
			},
			wantCode: codes.InvalidArgument,
		},
		{
			name: "foreign move",
			call: func() error {
				_, err := h.MoveTask(strangerCtx, &pb.MoveTaskRequest{Id: ids[0], Position: 1})
				return err
			},
			wantCode: codes.PermissionDenied,
		},
		{
			name: "foreign get",
			call: func() error {
				_, err := h.GetTask(strangerCtx, &pb.GetTaskRequest{Id: ids[0]})
				return err
			},
			wantCode: codes.PermissionDenied,
		},
		{
			name: "get deleted task",
			call: func() error {
				_, err := h.GetTask(ctx, &pb.GetTaskRequest{Id: ids[1]})
				return err
			},
			wantCode: codes.NotFound,
		},
		{
			name: "deleted task",
			call: func() error {
				_, err := h.ToggleTask(ctx, &pb.ToggleTaskRequest{Id: ids[1]})
				return err
			},
			wantCode: codes.NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, status.Code(err))
		})
	}
}
