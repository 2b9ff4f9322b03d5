package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/mayobojhosue-coder/app-bloom/internal/auth"
	pb "github.com/mayobojhosue-coder/app-bloom/pkg/proto"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Login authenticates the admin and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[pb.LoginRequest]) (*connect.Response[pb.LoginResponse], error) {
	s.logger.Info("Login request", "name", req.Msg.Name)

	if req.Msg.Name == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	admin, err := s.authenticator.Authenticate(ctx, req.Msg.Name, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "name", req.Msg.Name, "error", err)
		if errors.Is(err, auth.ErrNotConfigured) {
			return nil, connect.NewError(connect.CodeFailedPrecondition, err)
		}
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, expiresAt, err := s.jwtManager.Generate(admin)
	if err != nil {
		s.logger.Error("Failed to generate token", "name", admin.Name, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Admin logged in successfully", "name", admin.Name)
	return connect.NewResponse(&pb.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}), nil
}
