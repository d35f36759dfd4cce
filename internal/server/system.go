package server

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/elskow/tasktrack/internal/api"
	"github.com/elskow/tasktrack/internal/auth"
	"github.com/elskow/tasktrack/internal/storage"
	pb "github.com/elskow/tasktrack/proto/gen/tasktrack"
)

const pingTimeout = 2 * time.Second

// SystemHandler reports which backend is serving and whether it answers.
type SystemHandler struct {
	pb.UnimplementedSystemServer
	backend storage.Backend
	log     *zap.Logger
	now     func() time.Time
}

var _ pb.SystemServer = (*SystemHandler)(nil)

func NewSystemHandler(backend storage.Backend, log *zap.Logger) *SystemHandler {
	return &SystemHandler{
		backend: backend,
		log:     log,
		now:     time.Now,
	}
}

func (h *SystemHandler) Info(ctx context.Context, _ *pb.InfoRequest) (*pb.InfoResponse, error) {
	resp := &pb.InfoResponse{
		Storage: api.NewStorageInfo(h.backend.Info()),
		Time:    timestamppb.New(h.now()),
	}
	if user, ok := auth.UserFromContext(ctx); ok {
		resp.Caller = api.NewUser(user)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.backend.Ping(pingCtx); err != nil {
		h.log.Warn("storage ping failed", zap.Error(err))
		resp.Error = "storage is not reachable"
		return resp, nil
	}
	resp.Connected = true

	stats, err := h.backend.Stats(pingCtx)
	if err != nil {
		h.log.Warn("failed to collect storage stats", zap.Error(err))
		return resp, nil
	}
	resp.Stats = api.NewStorageStats(stats)
	return resp, nil
}
