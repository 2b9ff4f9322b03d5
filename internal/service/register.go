package service

import (
	"log/slog"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mayobojhosue-coder/app-bloom/internal/auth"
	"github.com/mayobojhosue-coder/app-bloom/internal/metrics"
	"github.com/mayobojhosue-coder/app-bloom/internal/middleware"
	"github.com/mayobojhosue-coder/app-bloom/internal/storage"
	"github.com/mayobojhosue-coder/app-bloom/pkg/proto/protoconnect"
)

// Deps are the collaborators of the Connect services.
type Deps struct {
	Store         storage.Store
	Metrics       *metrics.Metrics // optional
	Authenticator auth.Authenticator
	JWT           *auth.JWTManager
	ReportTitle   string
	Logger        *slog.Logger // optional
}

// Register mounts the attendance, roster and auth services on mux.
// Roster edits require an admin token; every call is logged.
func Register(mux *http.ServeMux, d Deps) {
	interceptors := connect.WithInterceptors(
		middleware.RequireAuthFor(d.JWT, AdminProcedures...),
		middleware.LoggingInterceptor(d.Logger),
	)

	mux.Handle(protoconnect.NewAttendanceServiceHandler(NewAttendanceService(d.Store, d.Metrics, d.ReportTitle), interceptors))
	mux.Handle(protoconnect.NewRosterServiceHandler(NewRosterService(d.Store), interceptors))
	mux.Handle(protoconnect.NewAuthServiceHandler(NewAuthService(d.Authenticator, d.JWT, d.Logger), interceptors))
}
