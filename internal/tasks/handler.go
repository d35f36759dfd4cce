package tasks

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"

	"github.com/elskow/tasktrack/internal/api"
	"github.com/elskow/tasktrack/internal/auth"
	pb "github.com/elskow/tasktrack/proto/gen/tasktrack"
)

type Handler struct {
	pb.UnimplementedTasksServer
	service *Service
	log     *zap.Logger
}

var _ pb.TasksServer = (*Handler)(nil)

func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

func (h *Handler) CreateTask(ctx context.Context, req *pb.CreateTaskRequest) (*pb.TaskResponse, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, api.ToStatus(err)
	}

	task, err := h.service.Create(ctx, userID, req.GetTitle(), req.GetDescription())
	if err != nil {
		return nil, h.fail("failed to create task", err)
	}
	return &pb.TaskResponse{Task: api.NewTask(task)}, nil
}

func (h *Handler) ListTasks(ctx context.Context, _ *pb.ListTasksRequest) (*pb.ListTasksResponse, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, api.ToStatus(err)
	}

	owned, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, h.fail("failed to list tasks", err)
	}

	resp := &pb.ListTasksResponse{Tasks: make([]*pb.Task, 0, len(owned))}
	for i := range owned {
		resp.Tasks = append(resp.Tasks, api.NewTask(&owned[i]))
	}
	return resp, nil
}

func (h *Handler) GetTask(ctx context.Context, req *pb.GetTaskRequest) (*pb.TaskResponse, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, api.ToStatus(err)
	}

	task, err := h.service.Get(ctx, userID, req.GetId())
	if err != nil {
		return nil, h.fail("failed to get task", err)
	}
	return &pb.TaskResponse{Task: api.NewTask(task)}, nil
}

func (h *Handler) MoveTask(ctx context.Context, req *pb.MoveTaskRequest) (*pb.TaskResponse, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, api.ToStatus(err)
	}

	task, err := h.service.Move(ctx, userID, req.GetId(), int(req.GetPosition()))
	if err != nil {
		return nil, h.fail("failed to move task", err)
	}
	return &pb.TaskResponse{Task: api.NewTask(task)}, nil
}

func (h *Handler) ToggleTask(ctx context.Context, req *pb.ToggleTaskRequest) (*pb.TaskResponse, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, api.ToStatus(err)
	}

	task, err := h.service.Toggle(ctx, userID, req.GetId())
	if err != nil {
		return nil, h.fail("failed to toggle task", err)
	}
	return &pb.TaskResponse{Task: api.NewTask(task)}, nil
}

func (h *Handler) DeleteTask(ctx context.Context, req *pb.DeleteTaskRequest) (*pb.MessageResponse, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, api.ToStatus(err)
	}

	if err := h.service.Delete(ctx, userID, req.GetId()); err != nil {
		return nil, h.fail("failed to delete task", err)
	}
	return &pb.MessageResponse{Message: "Task deleted successfully"}, nil
}

func (h *Handler) fail(msg string, err error) error {
	if api.Code(err) == codes.Internal {
		h.log.Error(msg, zap.Error(err))
	}
	return api.ToStatus(err)
}
