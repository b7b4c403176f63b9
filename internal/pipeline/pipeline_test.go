package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/socialshield/socialshield/internal/model"
)

// mockStep is a test helper that implements the Step interface.
type mockStep struct {
	name      string
	doFunc    func(ctx context.Context, report *model.ExposureReport) error
	callCount int
}

// Do implements Step.Do.
func (m *mockStep) Do(ctx context.Context, report *model.ExposureReport) error {
	m.callCount++
	if m.doFunc != nil {
		return m.doFunc(ctx, report)
	}
	return nil
}

// Name implements Step.Name.
func (m *mockStep) Name() string {
	return m.name
}

// TestPipelineNew tests the Pipeline constructor.
func TestPipelineNew(t *testing.T) {
	t.Parallel()

	t.Run("creates pipeline with default settings", func(t *testing.T) {
		t.Parallel()

		p := New()

		if p == nil {
			t.Fatal("expected non-nil pipeline")
		}
		if p.StepCount() != 0 {
			t.Errorf("expected 0 steps, got %d", p.StepCount())
		}
	})

	t.Run("applies WithContinueOnError option", func(t *testing.T) {
		t.Parallel()

		p := New(WithContinueOnError(true))

		if !p.continueOnError {
			t.Error("expected continueOnError to be true")
		}
	})
}

// TestPipelineAddStep tests adding steps to the pipeline.
func TestPipelineAddStep(t *testing.T) {
	t.Parallel()

	t.Run("adds single step", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{name: "test-step"})

		if p.StepCount() != 1 {
			t.Errorf("expected 1 step, got %d", p.StepCount())
		}
	})

	t.Run("maintains step order", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddSteps(
			&mockStep{name: "first"},
			&mockStep{name: "second"},
			&mockStep{name: "third"},
		)

		names := p.StepNames()

		expected := []string{"first", "second", "third"}
		for i, name := range names {
			if name != expected[i] {
				t.Errorf("step %d: got %q, expected %q", i, name, expected[i])
			}
		}
	})
}

// TestPipelineExecute tests pipeline execution.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("executes all steps in order", func(t *testing.T) {
		t.Parallel()

		executionOrder := make([]string, 0)

		p := New()
		for _, name := range []string{"step-1", "step-2", "step-3"} {
			name := name
			p.AddStep(&mockStep{
				name: name,
				doFunc: func(_ context.Context, _ *model.ExposureReport) error {
					executionOrder = append(executionOrder, name)
					return nil
				},
			})
		}

		report := model.NewExposureReport(model.MustNewHandle("jane"))
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		want := []string{"step-1", "step-2", "step-3"}
		for i, name := range want {
			if executionOrder[i] != name {
				t.Errorf("execution %d = %q, want %q", i, executionOrder[i], name)
			}
		}
	})

	t.Run("records performed steps", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddSteps(&mockStep{name: "collect_posts"}, &mockStep{name: "scan_biography"})

		report := model.NewExposureReport(model.MustNewHandle("jane"))
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if len(report.PerformedSteps) != 2 {
			t.Fatalf("PerformedSteps = %v", report.PerformedSteps)
		}
		if report.PerformedSteps[0] != "collect_posts" || report.PerformedSteps[1] != "scan_biography" {
			t.Errorf("PerformedSteps = %v", report.PerformedSteps)
		}
	})

	t.Run("stops on first error by default", func(t *testing.T) {
		t.Parallel()

		stepErr := errors.New("step failed")
		second := &mockStep{name: "second"}

		p := New()
		p.AddStep(&mockStep{
			name: "first",
			doFunc: func(_ context.Context, _ *model.ExposureReport) error {
				return stepErr
			},
		})
		p.AddStep(second)

		report := model.NewExposureReport(model.MustNewHandle("jane"))
		err := p.Execute(context.Background(), report)

		if !errors.Is(err, stepErr) {
			t.Errorf("Execute() error = %v, want %v", err, stepErr)
		}
		if second.callCount != 0 {
			t.Error("second step must not run after a failure")
		}
		if !errors.Is(report.Error, stepErr) {
			t.Error("report must record the error")
		}
	})

	t.Run("continues after error when configured", func(t *testing.T) {
		t.Parallel()

		second := &mockStep{name: "second"}

		p := New(WithContinueOnError(true))
		p.AddStep(&mockStep{
			name: "first",
			doFunc: func(_ context.Context, _ *model.ExposureReport) error {
				return errors.New("step failed")
			},
		})
		p.AddStep(second)

		report := model.NewExposureReport(model.MustNewHandle("jane"))
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if second.callCount != 1 {
			t.Error("second step must run with continueOnError")
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		step := &mockStep{name: "never"}
		p := New()
		p.AddStep(step)

		report := model.NewExposureReport(model.MustNewHandle("jane"))
		err := p.Execute(ctx, report)

		if !errors.Is(err, context.Canceled) {
			t.Errorf("Execute() error = %v, want context.Canceled", err)
		}
		if step.callCount != 0 {
			t.Error("step must not run after cancellation")
		}
	})
}
