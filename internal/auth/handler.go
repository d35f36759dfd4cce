package auth

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"

	"github.com/elskow/tasktrack/internal/api"
	pb "github.com/elskow/tasktrack/proto/gen/tasktrack"
)

type Handler struct {
	pb.UnimplementedAuthServer
	service *Service
	log     *zap.Logger
}

var _ pb.AuthServer = (*Handler)(nil)

func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

func authResponse(message string, session *Session) *pb.AuthResponse {
	return &pb.AuthResponse{
		Message:      message,
		User:         api.NewUser(session.User),
		AccessToken:  session.Tokens.AccessToken,
		RefreshToken: session.Tokens.RefreshToken,
		TokenType:    api.TokenTypeBearer,
		ExpiresIn:    int64(session.Tokens.ExpiresIn.Seconds()),
	}
}

func (h *Handler) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	h.log.Info("handling register request", zap.String("username", req.GetUsername()))

	session, err := h.service.Register(ctx, RegisterInput{
		Username:  req.GetUsername(),
		Email:     req.GetEmail(),
		Password:  req.GetPassword(),
		FirstName: req.GetFirstName(),
		LastName:  req.GetLastName(),
	})
	if err != nil {
		return nil, h.fail("register failed", err)
	}

	return authResponse("User registered successfully", session), nil
}

func (h *Handler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	session, err := h.service.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, h.fail("login failed", err)
	}

	return authResponse("Login successful", session), nil
}

func (h *Handler) Logout(ctx context.Context, _ *pb.LogoutRequest) (*pb.MessageResponse, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, api.ToStatus(err)
	}

	h.service.Logout(ctx, userID)
	return &pb.MessageResponse{Message: "Logout successful"}, nil
}

func (h *Handler) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.RefreshResponse, error) {
	token := req.GetRefreshToken()
	if token == "" {
		token = CookieFromContext(ctx, RefreshTokenCookie)
	}

	tokens, err := h.service.Refresh(ctx, token)
	if err != nil {
		return nil, h.fail("token refresh failed", err)
	}

	return &pb.RefreshResponse{
		AccessToken: tokens.AccessToken,
		TokenType:   api.TokenTypeBearer,
		ExpiresIn:   int64(tokens.ExpiresIn.Seconds()),
	}, nil
}

func (h *Handler) Me(ctx context.Context, _ *pb.MeRequest) (*pb.UserResponse, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, api.ToStatus(err)
	}

	user, err := h.service.Me(ctx, userID)
	if err != nil {
		return nil, h.fail("failed to load user", err)
	}
	return &pb.UserResponse{User: api.NewUser(user)}, nil
}

func (h *Handler) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UserResponse, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, api.ToStatus(err)
	}

	user, err := h.service.UpdateProfile(ctx, userID, ProfileUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Preferences: preferencesUpdate(req.GetPreferences()),
	})
	if err != nil {
		return nil, h.fail("failed to update profile", err)
	}
	return &pb.UserResponse{User: api.NewUser(user)}, nil
}

func (h *Handler) UpdatePreferences(ctx context.Context, req *pb.UpdatePreferencesRequest) (*pb.UserResponse, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, api.ToStatus(err)
	}

	update := preferencesUpdate(req.GetPreferences())
	if update == nil {
		update = &PreferencesUpdate{}
	}

	user, err := h.service.UpdatePreferences(ctx, userID, *update)
	if err != nil {
		return nil, h.fail("failed to update preferences", err)
	}
	return &pb.UserResponse{User: api.NewUser(user)}, nil
}

func (h *Handler) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.MessageResponse, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, api.ToStatus(err)
	}

	if err := h.service.ChangePassword(ctx, userID, req.GetCurrentPassword(), req.GetNewPassword()); err != nil {
		return nil, h.fail("failed to change password", err)
	}
	return &pb.MessageResponse{Message: "Password changed successfully"}, nil
}

func (h *Handler) DeleteAccount(ctx context.Context, req *pb.DeleteAccountRequest) (*pb.MessageResponse, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, api.ToStatus(err)
	}

	if err := h.service.DeleteAccount(ctx, userID, req.GetPassword()); err != nil {
		return nil, h.fail("failed to delete account", err)
	}
	return &pb.MessageResponse{Message: "Account deleted successfully"}, nil
}

// fail logs unexpected errors and converts err to a gRPC status.
func (h *Handler) fail(msg string, err error) error {
	st := api.ToStatus(err)
	if api.Code(err) == codes.Internal {
		h.log.Error(msg, zap.Error(err))
	} else {
		h.log.Debug(msg, zap.Error(err))
	}
	return st
}

func preferencesUpdate(p *pb.PreferencesPatch) *PreferencesUpdate {
	if p == nil {
		return nil
	}

	update := &PreferencesUpdate{
		Theme:    p.Theme,
		TimeZone: p.TimeZone,
	}
	if n := p.Notifications; n != nil {
		update.Notifications = &NotificationsUpdate{
			Email:     n.Email,
			Push:      n.Push,
			Reminders: n.Reminders,
		}
	}
	return update
}
