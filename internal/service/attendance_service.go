package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/mayobojhosue-coder/app-bloom/internal/attendance"
	"github.com/mayobojhosue-coder/app-bloom/internal/metrics"
	"github.com/mayobojhosue-coder/app-bloom/internal/models"
	"github.com/mayobojhosue-coder/app-bloom/internal/report"
	"github.com/mayobojhosue-coder/app-bloom/internal/storage"
	pb "github.com/mayobojhosue-coder/app-bloom/pkg/proto"
)

// maxReports caps ListReports when the caller asks for everything.
const maxReports = 100

// ErrInvalidDate is returned for dates not in DD/MM/YYYY form.
var ErrInvalidDate = errors.New("date must be DD/MM/YYYY")

// AttendanceService implements the Connect AttendanceService
type AttendanceService struct {
	store   storage.Store
	metrics *metrics.Metrics
	title   string
	now     func() time.Time
}

// NewAttendanceService creates a new AttendanceService with the given storage backend.
// m may be nil.
func NewAttendanceService(store storage.Store, m *metrics.Metrics, title string) *AttendanceService {
	return &AttendanceService{store: store, metrics: m, title: title, now: time.Now}
}

// Outcome is one taken attendance: the reconciliation, its rendered report and,
// when recorded, the stored report.
type Outcome struct {
	Result *attendance.Result
	Text   string
	Day    time.Time
	Saved  *models.Report
}

// ParseDate reads a DD/MM/YYYY day. An empty string means today.
func (s *AttendanceService) ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return s.now(), nil
	}
	day, err := time.ParseInLocation(report.DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return day, nil
}

// Take reconciles text against a fresh roster snapshot and renders the report.
// When record is true the report is saved in the history.
func (s *AttendanceService) Take(ctx context.Context, text string, day time.Time, record bool) (*Outcome, error) {
	// Load the full snapshot first; reconciliation never touches the store.
	rosters, err := s.store.LoadRosters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rosters: %w", err)
	}

	start := time.Now()
	result := attendance.Reconcile(attendance.ParseEntries(text), rosters)
	if s.metrics != nil {
		s.metrics.Observe(result, time.Since(start))
	}

	out := &Outcome{
		Result: result,
		Text:   report.Format(result, report.Options{Title: s.title, Date: day}),
		Day:    day,
	}

	if record {
		total := result.Total()
		saved := &models.Report{
			Title:     s.reportTitle(),
			TakenOn:   day.Format(time.DateOnly),
			Text:      out.Text,
			Present:   total.Present,
			Absent:    total.Absent,
			Unmatched: result.Unmatched,
		}
		if err := s.store.SaveReport(ctx, saved); err != nil {
			return nil, fmt.Errorf("failed to record report: %w", err)
		}
		out.Saved = saved
	}

	return out, nil
}

func (s *AttendanceService) reportTitle() string {
	if s.title == "" {
		return report.DefaultTitle
	}
	return s.title
}

// Reconcile matches the submitted names against the rosters.
func (s *AttendanceService) Reconcile(ctx context.Context, req *connect.Request[pb.ReconcileRequest]) (*connect.Response[pb.ReconcileResponse], error) {
	slog.Info("Reconcile request received",
		"text_bytes", len(req.Msg.Text),
		"date", req.Msg.Date,
		"record", req.Msg.Record,
	)

	day, err := s.ParseDate(req.Msg.Date)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	out, err := s.Take(ctx, req.Msg.Text, day, req.Msg.Record)
	if err != nil {
		slog.Error("Reconcile failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := toReconcileResponse(out)
	total := out.Result.Total()
	slog.Info("Reconcile successful",
		"present", total.Present,
		"absent", total.Absent,
		"unmatched", len(out.Result.Unmatched),
		"report_id", resp.ReportId,
	)
	if len(out.Result.Unmatched) > 0 {
		slog.Warn("Entries matched no roster", "entries", out.Result.Unmatched)
	}

	return connect.NewResponse(resp), nil
}

// ListReports returns the recorded history, newest first.
func (s *AttendanceService) ListReports(ctx context.Context, req *connect.Request[pb.ListReportsRequest]) (*connect.Response[pb.ListReportsResponse], error) {
	limit := int(req.Msg.Limit)
	if limit <= 0 || limit > maxReports {
		limit = maxReports
	}
	slog.Info("ListReports request received", "limit", limit)

	summaries, err := s.store.ListReports(ctx, limit)
	if err != nil {
		slog.Error("ListReports failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	reports := make([]*pb.ReportSummary, len(summaries))
	for i, r := range summaries {
		reports[i] = toReportSummary(r)
	}

	slog.Info("ListReports successful", "count", len(reports))
	return connect.NewResponse(&pb.ListReportsResponse{Reports: reports}), nil
}

// GetReport returns one recorded report.
func (s *AttendanceService) GetReport(ctx context.Context, req *connect.Request[pb.GetReportRequest]) (*connect.Response[pb.GetReportResponse], error) {
	reportID := req.Msg.ReportId
	slog.Info("GetReport request received", "report_id", reportID)

	if reportID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("report_id required"))
	}

	r, err := s.store.GetReport(ctx, reportID)
	if err != nil {
		slog.Error("GetReport failed", "report_id", reportID, "error", err)
		return nil, connect.NewError(storageCode(err), err)
	}

	return connect.NewResponse(&pb.GetReportResponse{
		Summary: toReportSummary(models.ReportSummary{
			ID:        r.ID,
			Title:     r.Title,
			TakenOn:   r.TakenOn,
			Present:   r.Present,
			Absent:    r.Absent,
			CreatedAt: r.CreatedAt,
		}),
		Text:      r.Text,
		Unmatched: r.Unmatched,
	}), nil
}

func toReconcileResponse(out *Outcome) *pb.ReconcileResponse {
	total := out.Result.Total()
	resp := &pb.ReconcileResponse{
		Partitions: make([]*pb.Partition, len(out.Result.Partitions)),
		Matches:    make([]*pb.Match, len(out.Result.Matches)),
		Unmatched:  out.Result.Unmatched,
		Total:      &pb.Totals{Present: int32(total.Present), Absent: int32(total.Absent)},
		Report:     out.Text,
	}
	for i, p := range out.Result.Partitions {
		resp.Partitions[i] = &pb.Partition{
			Category: string(p.Category),
			Label:    p.Category.Label(),
			Present:  p.Present,
			Absent:   p.Absent,
		}
	}
	for i, m := range out.Result.Matches {
		resp.Matches[i] = &pb.Match{
			Entry:    m.Entry,
			Category: string(m.Category),
			Name:     m.Name,
			Score:    m.Score,
			Exact:    m.Exact,
		}
	}
	if out.Saved != nil {
		resp.ReportId = out.Saved.ID
	}
	return resp
}

func toReportSummary(r models.ReportSummary) *pb.ReportSummary {
	return &pb.ReportSummary{
		Id:        r.ID,
		Title:     r.Title,
		TakenOn:   r.TakenOn,
		Present:   int32(r.Present),
		Absent:    int32(r.Absent),
		CreatedAt: r.CreatedAt,
	}
}

// storageCode maps store errors to Connect codes.
func storageCode(err error) connect.Code {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.CodeNotFound
	}
	return connect.CodeInternal
}
