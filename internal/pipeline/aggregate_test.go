package pipeline

import (
	"context"
	"reflect"
	"testing"

	"github.com/goccy/go-json"
	"github.com/socialshield/socialshield/internal/model"
	"github.com/socialshield/socialshield/internal/source"
)

func postWithGeotag(t *testing.T, id, location string) *model.PostRecord {
	t.Helper()

	raw := `{
		"id": "` + id + `",
		"location": {"name": "` + location + `"},
		"edge_media_to_tagged_user": {"edges": [
			{"node": {"user": {"full_name": "Jane Doe", "username": "janedoe"}}}
		]}
	}`

	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return &model.PostRecord{ID: id, Document: doc}
}

// TestBuilderBuildReport tests report assembly from pre-fetched data.
func TestBuilderBuildReport(t *testing.T) {
	t.Parallel()

	t.Run("aggregates all exposure channels", func(t *testing.T) {
		t.Parallel()

		b := NewBuilder(WithBuilderLogger(discardLogger()))
		handle := model.MustNewHandle("jane")
		posts := []*model.PostRecord{postWithGeotag(t, "p1", "Lisbon")}

		report, err := b.BuildReport(context.Background(), handle, posts, nil, "mail me: jane@example.com")
		if err != nil {
			t.Fatalf("BuildReport() error = %v", err)
		}

		if len(report.GeotagEvents) != 1 {
			t.Errorf("GeotagEvents = %d, want 1", len(report.GeotagEvents))
		}
		if len(report.TaggedUserEvents) != 1 {
			t.Errorf("TaggedUserEvents = %d, want 1", len(report.TaggedUserEvents))
		}
		if len(report.PIIFindings) != 1 {
			t.Errorf("PIIFindings = %d, want 1", len(report.PIIFindings))
		}
		if report.Summary == nil {
			t.Fatal("report must be finalized")
		}
		if report.Summary.GeotagCount != 1 || report.Summary.PIICount != 1 {
			t.Errorf("Summary = %+v", report.Summary)
		}
	})

	t.Run("same inputs yield structurally equal reports", func(t *testing.T) {
		t.Parallel()

		b := NewBuilder(WithBuilderLogger(discardLogger()))
		handle := model.MustNewHandle("jane")
		posts := []*model.PostRecord{postWithGeotag(t, "p1", "Lisbon")}
		bio := "reach me at jane@example.com or 212-555-0187"

		first, err := b.BuildReport(context.Background(), handle, posts, nil, bio)
		if err != nil {
			t.Fatalf("BuildReport() error = %v", err)
		}
		second, err := b.BuildReport(context.Background(), handle, posts, nil, bio)
		if err != nil {
			t.Fatalf("BuildReport() error = %v", err)
		}

		// Everything except the scan identifier and timestamp must match.
		second.ScanID = first.ScanID
		second.DateScanned = first.DateScanned

		if !reflect.DeepEqual(first.Findings, second.Findings) {
			t.Error("findings differ between identical runs")
		}
		if !reflect.DeepEqual(first.GeotagEvents, second.GeotagEvents) {
			t.Error("geotag events differ between identical runs")
		}
		if !reflect.DeepEqual(first.PIIFindings, second.PIIFindings) {
			t.Error("PII findings differ between identical runs")
		}
		if !reflect.DeepEqual(first.Summary.Findings, second.Summary.Findings) {
			t.Error("summaries differ between identical runs")
		}
	})

	t.Run("empty inputs yield an empty finalized report", func(t *testing.T) {
		t.Parallel()

		b := NewBuilder(WithBuilderLogger(discardLogger()))
		report, err := b.BuildReport(context.Background(), model.MustNewHandle("ghost"), nil, nil, "")
		if err != nil {
			t.Fatalf("BuildReport() error = %v", err)
		}

		if report.Summary == nil {
			t.Fatal("report must be finalized")
		}
		if report.Summary.TotalFindings() != 0 {
			t.Errorf("TotalFindings = %d, want 0", report.Summary.TotalFindings())
		}
	})
}

// TestBuilderBuildReports tests the batch entry point end to end.
func TestBuilderBuildReports(t *testing.T) {
	t.Parallel()

	known := &fakeSource{profiles: map[string]*source.Profile{
		"alice": {
			Identity:  model.MustNewHandle("alice"),
			Biography: "alice@example.com",
		},
		"carol": {
			Identity: model.MustNewHandle("carol"),
			Posts:    []*model.PostRecord{postWithGeotag(t, "p1", "Berlin")},
		},
	}}

	b := NewBuilder(WithBuilderLogger(discardLogger()), WithBuilderConcurrency(2))
	handles := testHandles(t, "alice", "bob", "carol")

	reports, err := b.BuildReports(context.Background(), handles, known)
	if err != nil {
		t.Fatalf("BuildReports() error = %v", err)
	}

	if len(reports) != len(handles) {
		t.Fatalf("got %d reports, want %d", len(reports), len(handles))
	}

	for i, report := range reports {
		if report.Subject != handles[i] {
			t.Errorf("report %d subject = %v, want %v", i, report.Subject, handles[i])
		}
		if report.Summary == nil {
			t.Errorf("report %d is not finalized", i)
		}
	}

	if len(reports[0].PIIFindings) == 0 {
		t.Error("alice's biography must produce PII findings")
	}
	if !reports[1].NotFound {
		t.Error("bob must be marked NotFound")
	}
	if len(reports[1].Findings) != 0 {
		t.Error("bob's report must carry no findings")
	}
	if len(reports[2].GeotagEvents) != 1 {
		t.Errorf("carol's GeotagEvents = %d, want 1", len(reports[2].GeotagEvents))
	}
}
