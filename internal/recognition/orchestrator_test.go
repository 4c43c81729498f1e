package recognition

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

type fakeEngine struct {
	name string
	fn   func(in Input) (Result, error)
}

func (f *fakeEngine) Name() string { return f.name }

func (f *fakeEngine) Recognize(_ context.Context, in Input) (Result, error) {
	return f.fn(in)
}

func testPages(n int) (map[int][]byte, []int) {
	pages := make(map[int][]byte, n)
	targets := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		pages[i] = []byte(fmt.Sprintf("page-%d", i))
		targets = append(targets, i)
	}
	return pages, targets
}

func TestRunPartialPageFailure(t *testing.T) {
	primary := &fakeEngine{name: "primary", fn: func(in Input) (Result, error) {
		if in.PageNo == 2 {
			return Result{}, errors.New("blank scan")
		}
		return Result{Text: "text " + string(in.Data), TokenConfidences: []float32{0.9}}, nil
	}}
	o := NewOrchestrator(NewProvider(nil, primary), nil)

	pages, targets := testPages(3)
	results, err := o.Run(context.Background(), "T1", pages, targets, "IMAGE", "eng", []string{"primary"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, want := range []int{1, 2, 3} {
		if results[i].PageNo != want {
			t.Errorf("results[%d].PageNo = %d, want %d", i, results[i].PageNo, want)
		}
	}
	if results[0].Text == "" || results[2].Text == "" {
		t.Errorf("pages 1 and 3 must carry text despite page 2 failing: %q, %q", results[0].Text, results[2].Text)
	}
	if !results[1].Failed() {
		t.Errorf("page 2 should be marked failed, got %+v", results[1])
	}
	if !strings.Contains(results[1].FailureReason, "blank scan") {
		t.Errorf("failure reason should name the cause, got %q", results[1].FailureReason)
	}
}

func TestRunFallbackEngine(t *testing.T) {
	primary := &fakeEngine{name: "primary", fn: func(Input) (Result, error) {
		return Result{}, errors.New("engine unavailable")
	}}
	backup := &fakeEngine{name: "backup", fn: func(in Input) (Result, error) {
		return Result{Text: "recovered", TokenConfidences: []float32{0.6}}, nil
	}}
	o := NewOrchestrator(NewProvider(nil, primary, backup), nil)

	pages, targets := testPages(1)
	results, err := o.Run(context.Background(), "T1", pages, targets, "IMAGE", "eng", []string{"primary", "backup"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if results[0].Engine != "backup" || !results[0].Fallback {
		t.Errorf("expected fallback result from backup, got engine=%q fallback=%v", results[0].Engine, results[0].Fallback)
	}
	if results[0].Text != "recovered" {
		t.Errorf("text = %q, want %q", results[0].Text, "recovered")
	}
}

func TestRunEmptyTextTriggersFallback(t *testing.T) {
	primary := &fakeEngine{name: "primary", fn: func(Input) (Result, error) {
		return Result{Text: "   "}, nil
	}}
	backup := &fakeEngine{name: "backup", fn: func(Input) (Result, error) {
		return Result{Text: "from backup", TokenConfidences: []float32{0.5}}, nil
	}}
	p := NewProvider(nil, primary, backup)

	res := p.RecognizePage(context.Background(), Input{PageNo: 1, Data: []byte("x")}, []string{"primary", "backup"})
	if res.Engine != "backup" {
		t.Errorf("whitespace-only output should count as failure, got engine %q", res.Engine)
	}
}

func TestRunMissingPage(t *testing.T) {
	primary := &fakeEngine{name: "primary", fn: func(in Input) (Result, error) {
		return Result{Text: "ok", TokenConfidences: []float32{0.9}}, nil
	}}
	o := NewOrchestrator(NewProvider(nil, primary), nil)

	pages := map[int][]byte{1: []byte("a")}
	results, err := o.Run(context.Background(), "T1", pages, []int{1, 5}, "IMAGE", "eng", []string{"primary"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 2 || !results[1].Failed() {
		t.Fatalf("missing page should yield a failed result, got %+v", results)
	}
}

func TestRunDeadline(t *testing.T) {
	slow := &fakeEngine{name: "slow", fn: func(Input) (Result, error) {
		time.Sleep(50 * time.Millisecond)
		return Result{Text: "late", TokenConfidences: []float32{0.9}}, nil
	}}
	o := NewOrchestrator(NewProvider(nil, slow), nil,
		WithTimeouts(time.Millisecond, time.Millisecond), WithMaxConcurrent(1))

	pages, targets := testPages(2)
	_, err := o.Run(context.Background(), "T1", pages, targets, "IMAGE", "eng", []string{"slow"})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
}
