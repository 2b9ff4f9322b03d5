package proto_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/testing/protocmp"

	pb "github.com/mayobojhosue-coder/app-bloom/pkg/proto"
)

func TestServiceDescriptors(t *testing.T) {
	tests := []struct {
		file    protoreflect.FileDescriptor
		service protoreflect.Name
		methods []protoreflect.Name
	}{
		{pb.File_bloom_v1_attendance_proto, "AttendanceService", []protoreflect.Name{"Reconcile", "ListReports", "GetReport"}},
		{pb.File_bloom_v1_roster_proto, "RosterService", []protoreflect.Name{"ListRosters", "AddMember", "RemoveMember"}},
		{pb.File_bloom_v1_auth_proto, "AuthService", []protoreflect.Name{"Login"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.service), func(t *testing.T) {
			assert.Equal(t, protoreflect.FullName("bloom.v1"), tt.file.Package())
			svc := tt.file.Services().ByName(tt.service)
			require.NotNil(t, svc)
			for _, m := range tt.methods {
				assert.NotNil(t, svc.Methods().ByName(m), "method %s", m)
			}
		})
	}
}

func TestReportRoundTrip(t *testing.T) {
	in := &pb.GetReportResponse{
		Summary: &pb.ReportSummary{
			Id:        "7c0d6c1e-2b7a-4a8e-9f00-3d2c1b0a9f8e",
			Title:     "Liste de présence de Bloom",
			TakenOn:   "2026-10-14",
			Present:   3,
			Absent:    2,
			CreatedAt: 1792000000,
		},
		Text:      "Date : 14/10/2026",
		Unmatched: []string{"quelqu'un"},
	}

	wire, err := proto.Marshal(in)
	require.NoError(t, err)
	out := &pb.GetReportResponse{}
	require.NoError(t, proto.Unmarshal(wire, out))
	if diff := cmp.Diff(in, out, protocmp.Transform()); diff != "" {
		t.Errorf("binary round trip mismatch (-want +got):\n%s", diff)
	}

	js, err := protojson.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(js), `"takenOn"`)
	out = &pb.GetReportResponse{}
	require.NoError(t, protojson.Unmarshal(js, out))
	if diff := cmp.Diff(in, out, protocmp.Transform()); diff != "" {
		t.Errorf("json round trip mismatch (-want +got):\n%s", diff)
	}
}
