package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/elskow/tasktrack/internal/api"
	"github.com/elskow/tasktrack/internal/auth"
	"github.com/elskow/tasktrack/internal/config"
	"github.com/elskow/tasktrack/internal/storage"
	"github.com/elskow/tasktrack/internal/storage/file"
	"github.com/elskow/tasktrack/internal/tasks"
	pb "github.com/elskow/tasktrack/proto/gen/tasktrack"
)

type testClients struct {
	pb.AuthClient
	pb.TasksClient
	pb.SystemClient
}

func newTestConfig() *config.AppConfig {
	return &config.AppConfig{
		Auth: config.AuthConfig{
			JWTSecret:           "test-secret-key",
			RefreshTokenEnabled: true,
			PasswordCost:        bcrypt.MinCost,
		},
		RateLimit: config.RateLimitConfig{
			Enabled:        true,
			LoginAttempts:  5,
			LoginWindow:    15 * time.Minute,
			RegisterLimit:  3,
			RegisterWindow: time.Hour,
		},
	}
}

// newTestServer runs the full service stack on a file backend and returns a
// client connected over an in-memory listener.
func newTestServer(t *testing.T, cfg *config.AppConfig) (*testClients, *grpc.ClientConn) {
	log := zaptest.NewLogger(t)

	backend, err := file.Open(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	var backendIface storage.Backend = backend
	tokens := auth.NewTokenService(&cfg.Auth)
	guard := auth.NewGuard(tokens, backendIface, log)

	srv := NewServer(Params{
		Config:         cfg,
		Logger:         log,
		Backend:        backendIface,
		AuthHandler:    auth.NewHandler(auth.NewService(&cfg.Auth, log, backendIface, tokens), log),
		TasksHandler:   tasks.NewHandler(tasks.NewService(log, backendIface), log),
		SystemHandler:  NewSystemHandler(backendIface, log),
		AuthMiddleware: auth.NewAuthMiddleware(guard, log),
		RateLimiter:    NewRateLimiter(cfg.RateLimit, log),
	})

	lis := bufconn.Listen(1 << 20)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &testClients{
		AuthClient:   pb.NewAuthClient(conn),
		TasksClient:  pb.NewTasksClient(conn),
		SystemClient: pb.NewSystemClient(conn),
	}, conn
}

func withToken(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func registerRequest(name string) *pb.RegisterRequest {
	return &pb.RegisterRequest{
		Username:  name,
		Email:     name + "@example.com",
		Password:  "testpass123",
		FirstName: "Test",
		LastName:  "User",
	}
}

func TestServer_EndToEnd(t *testing.T) {
	client, _ := newTestServer(t, newTestConfig())
	ctx := context.Background()

	registered, err := client.Register(ctx, registerRequest("alice"))
	require.NoError(t, err)
	assert.Equal(t, api.TokenTypeBearer, registered.TokenType)

	login, err := client.Login(ctx, &pb.LoginRequest{Email: "alice@example.com", Password: "testpass123"})
	require.NoError(t, err)
	authed := withToken(login.AccessToken)

	me, err := client.Me(authed, &pb.MeRequest{})
	require.NoError(t, err)
	assert.Equal(t, "alice", me.GetUser().GetUsername())

	var ids []string
	for _, title := range []string{"A", "B", "C", "D"} {
		resp, err := client.CreateTask(authed, &pb.CreateTaskRequest{Title: title})
		require.NoError(t, err)
		ids = append(ids, resp.GetTask().GetId())
	}

	_, err = client.MoveTask(authed, &pb.MoveTaskRequest{Id: ids[3], Position: 2})
	require.NoError(t, err)

	list, err := client.ListTasks(authed, &pb.ListTasksRequest{})
	require.NoError(t, err)
	var order []string
	for _, task := range list.Tasks {
		order = append(order, task.Title)
	}
	assert.Equal(t, []string{"A", "D", "B", "C"}, order)

	refreshed, err := client.Refresh(ctx, &pb.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	info, err := client.Info(withToken(refreshed.AccessToken), &pb.InfoRequest{})
	require.NoError(t, err)
	assert.Equal(t, storage.KindFile, info.GetStorage().GetKind())
	assert.True(t, info.GetConnected())
	require.NotNil(t, info.GetStats())
	assert.Equal(t, int64(1), info.GetStats().GetUsers())
	assert.Equal(t, int64(4), info.GetStats().GetTasks())
	require.NotNil(t, info.GetCaller())
	assert.Equal(t, "alice", info.GetCaller().GetUsername())
	assert.NotNil(t, info.GetTime())
}

func TestServer_AuthInterceptor(t *testing.T) {
	client, conn := newTestServer(t, newTestConfig())
	ctx := context.Background()

	registered, err := client.Register(ctx, registerRequest("bob"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		call     func() error
		wantCode codes.Code
	}{
		{
			name: "protected without token",
			call: func() error {
				_, err := client.ListTasks(ctx, &pb.ListTasksRequest{})
				return err
			},
			wantCode: codes.Unauthenticated,
		},
		{
			name: "protected with garbage token",
			call: func() error {
				_, err := client.Me(withToken("not-a-jwt"), &pb.MeRequest{})
				return err
			},
			wantCode: codes.Unauthenticated,
		},
		{
			name: "refresh token used as access token",
			call: func() error {
				_, err := client.Me(withToken(registered.RefreshToken), &pb.MeRequest{})
				return err
			},
			wantCode: codes.Unauthenticated,
		},
		{
			name: "public info is anonymous",
			call: func() error {
				info, err := client.Info(ctx, &pb.InfoRequest{})
				if err == nil && info.Caller != nil {
					t.Errorf("unexpected caller %q", info.GetCaller().GetUsername())
				}
				return err
			},
			wantCode: codes.OK,
		},
		{
			name: "health check",
			call: func() error {
				resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: api.TasksService})
				if err == nil {
					assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
				}
				return err
			},
			wantCode: codes.OK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, status.Code(tt.call()))
		})
	}
}

func TestServer_RegisterRateLimited(t *testing.T) {
	client, _ := newTestServer(t, newTestConfig())
	ctx := context.Background()

	for _, name := range []string{"user1", "user2", "user3"} {
		_, err := client.Register(ctx, registerRequest(name))
		require.NoError(t, err)
	}

	_, err := client.Register(ctx, registerRequest("user4"))
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestServer_GetTaskOwnership(t *testing.T) {
	client, _ := newTestServer(t, newTestConfig())
	ctx := context.Background()

	owner, err := client.Register(ctx, registerRequest("carol"))
	require.NoError(t, err)
	stranger, err := client.Register(ctx, registerRequest("dave"))
	require.NoError(t, err)

	created, err := client.CreateTask(withToken(owner.AccessToken), &pb.CreateTaskRequest{Title: "Private"})
	require.NoError(t, err)
	id := created.GetTask().GetId()

	tests := []struct {
		name     string
		token    string
		id       string
		wantCode codes.Code
	}{
		{name: "owner", token: owner.AccessToken, id: id, wantCode: codes.OK},
		{name: "stranger", token: stranger.AccessToken, id: id, wantCode: codes.PermissionDenied},
		{name: "missing", token: owner.AccessToken, id: "does-not-exist", wantCode: codes.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.GetTask(withToken(tt.token), &pb.GetTaskRequest{Id: tt.id})
			require.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode == codes.OK {
				assert.Equal(t, "Private", resp.GetTask().GetTitle())
				assert.Equal(t, owner.GetUser().GetId(), resp.GetTask().GetUser())
			}
		})
	}
}
