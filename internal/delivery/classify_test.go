package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/internal/entity"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		status int
		err    error
		want   constants.Outcome
	}{
		{"ok", 200, nil, constants.OutcomeSuccess},
		{"created", 201, nil, constants.OutcomeSuccess},
		{"rate limited", 429, nil, constants.OutcomeRateLimited},
		{"bad request", 400, nil, constants.OutcomeClientError},
		{"not found", 404, nil, constants.OutcomeClientError},
		{"server error", 500, nil, constants.OutcomeServerError},
		{"bad gateway", 502, nil, constants.OutcomeServerError},
		{"deadline", 0, context.DeadlineExceeded, constants.OutcomeTimeout},
		{"refused", 0, errors.New("connection refused"), constants.OutcomeNetworkError},
	}
	for _, tc := range cases {
		if got := Classify(tc.status, tc.err); got != tc.want {
			t.Errorf("%s: Classify(%d, %v) = %q, want %q", tc.name, tc.status, tc.err, got, tc.want)
		}
	}
}

func TestRetryable(t *testing.T) {
	if Retryable(constants.OutcomeSuccess) || Retryable(constants.OutcomeClientError) {
		t.Error("success and client_error must never retry")
	}
	for _, o := range []constants.Outcome{
		constants.OutcomeRateLimited, constants.OutcomeServerError,
		constants.OutcomeTimeout, constants.OutcomeNetworkError,
	} {
		if !Retryable(o) {
			t.Errorf("%q should be retryable", o)
		}
	}
}

func TestDelaySchedule(t *testing.T) {
	want := []time.Duration{10 * time.Second, 30 * time.Second, 90 * time.Second}
	for i, w := range want {
		if got := Delay(i); got != w {
			t.Errorf("Delay(%d) = %v, want %v", i, got, w)
		}
	}
	if got := Delay(9); got != 90*time.Second {
		t.Errorf("Delay past schedule = %v, want last slot", got)
	}
}

func TestSignVerify(t *testing.T) {
	body := []byte(`{"task_id":"T1"}`)
	ts := time.Unix(1767225600, 0)

	sig := Sign(body, "secret", ts)
	if !Verify(body, "secret", sig, ts) {
		t.Error("signature should verify with the same secret and timestamp")
	}
	if Verify(body, "other", sig, ts) {
		t.Error("signature must not verify with a different secret")
	}
	if Verify(body, "secret", sig, ts.Add(time.Second)) {
		t.Error("signature must bind the timestamp")
	}
}

func TestRenderTemplate(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	task := &entity.Task{
		ID:            "T9",
		RuleID:        "R_INV",
		RuleVersion:   "1.0",
		ExtractedData: map[string]any{"invoice_no": "INV-9"},
		CreatedAt:     now,
		CompletedAt:   &now,
	}
	out := Render(`{"id":"{{task_id}}","data":{{result}},"file":"{{file_url}}","x":"{{unknown}}"}`,
		BuildVars(task, "https://blob/url"))

	want := `{"id":"T9","data":{"invoice_no":"INV-9"},"file":"https://blob/url","x":"{{unknown}}"}`
	if out != want {
		t.Errorf("rendered = %s, want %s", out, want)
	}
}
