package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/mayobojhosue-coder/app-bloom/internal/attendance"
	"github.com/mayobojhosue-coder/app-bloom/internal/middleware"
	"github.com/mayobojhosue-coder/app-bloom/internal/models"
	"github.com/mayobojhosue-coder/app-bloom/internal/storage"
	pb "github.com/mayobojhosue-coder/app-bloom/pkg/proto"
	"github.com/mayobojhosue-coder/app-bloom/pkg/proto/protoconnect"
)

// AdminProcedures lists the procedures that require an admin token.
var AdminProcedures = []string{
	protoconnect.RosterServiceAddMemberProcedure,
	protoconnect.RosterServiceRemoveMemberProcedure,
}

// RosterService implements the Connect RosterService
type RosterService struct {
	store storage.RosterStore
}

// NewRosterService creates a new RosterService with the given storage backend.
func NewRosterService(store storage.RosterStore) *RosterService {
	return &RosterService{store: store}
}

// ListRosters returns every roster in resolution priority order.
func (s *RosterService) ListRosters(ctx context.Context, req *connect.Request[pb.ListRostersRequest]) (*connect.Response[pb.ListRostersResponse], error) {
	slog.Info("ListRosters request received")

	rosters, err := s.store.LoadRosters(ctx)
	if err != nil {
		slog.Error("ListRosters failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &pb.ListRostersResponse{}
	for _, r := range rosters.Ordered() {
		resp.Rosters = append(resp.Rosters, &pb.Roster{
			Category: string(r.Category),
			Label:    r.Category.Label(),
			Members:  r.Members,
		})
	}

	slog.Info("ListRosters successful", "members", rosters.Size())
	return connect.NewResponse(resp), nil
}

// AddMember adds a person to a roster. Adding a normalized duplicate succeeds
// with Added=false.
func (s *RosterService) AddMember(ctx context.Context, req *connect.Request[pb.AddMemberRequest]) (*connect.Response[pb.AddMemberResponse], error) {
	slog.Info("AddMember request received",
		"category", req.Msg.Category,
		"name", req.Msg.Name,
		"admin", middleware.GetAdmin(ctx),
	)

	category, name, err := parseMember(req.Msg.Category, req.Msg.Name)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	added, err := s.store.AddMember(ctx, category, name)
	if err != nil {
		slog.Error("AddMember failed", "category", category, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("AddMember successful", "category", category, "name", name, "added", added)
	return connect.NewResponse(&pb.AddMemberResponse{Added: added}), nil
}

// RemoveMember removes the member with the same normalized name.
func (s *RosterService) RemoveMember(ctx context.Context, req *connect.Request[pb.RemoveMemberRequest]) (*connect.Response[pb.RemoveMemberResponse], error) {
	slog.Info("RemoveMember request received",
		"category", req.Msg.Category,
		"name", req.Msg.Name,
		"admin", middleware.GetAdmin(ctx),
	)

	category, name, err := parseMember(req.Msg.Category, req.Msg.Name)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.RemoveMember(ctx, category, name); err != nil {
		slog.Error("RemoveMember failed", "category", category, "name", name, "error", err)
		return nil, connect.NewError(storageCode(err), err)
	}

	slog.Info("RemoveMember successful", "category", category, "name", name)
	return connect.NewResponse(&pb.RemoveMemberResponse{}), nil
}

var errEmptyName = errors.New("name required")

// parseMember rejects names with no identity left after normalization, such
// as blanks or lone combining accents.
func parseMember(rawCategory, rawName string) (models.Category, string, error) {
	category, err := models.ParseCategory(rawCategory)
	if err != nil {
		return "", "", err
	}
	key := attendance.Normalize(rawName)
	if key == "" {
		return "", "", fmt.Errorf("%s: %w", category, errEmptyName)
	}
	return category, strings.TrimSpace(rawName), nil
}
