package domain

import (
	"testing"

	"github.com/bytedance/sonic"
)

func TestTimestampAcceptsBothRenderings(t *testing.T) {
	cases := map[string]string{
		"rfc3339":        `"2026-03-01T10:20:30Z"`,
		"rfc3339 offset": `"2026-03-01T10:20:30+03:00"`,
		"bare iso micro": `"2026-03-01T10:20:30.123456"`,
		"bare iso":       `"2026-03-01T10:20:30"`,
		"date only":      `"2026-03-01"`,
	}
	for name, raw := range cases {
		var ts Timestamp
		if err := sonic.Unmarshal([]byte(raw), &ts); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if ts.IsZero() {
			t.Errorf("%s: parsed to zero", name)
		}
	}
}

func TestTimestampNullAndEmpty(t *testing.T) {
	for _, raw := range []string{`null`, `""`} {
		var ts Timestamp
		if err := sonic.Unmarshal([]byte(raw), &ts); err != nil {
			t.Errorf("%q: %v", raw, err)
		}
		if !ts.IsZero() {
			t.Errorf("%q: expected zero time", raw)
		}
	}
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	if err := sonic.Unmarshal([]byte(`"next tuesday"`), &ts); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoanTransitions(t *testing.T) {
	allowed := [][2]string{
		{LoanStatusPending, LoanStatusProcessing},
		{LoanStatusPending, LoanStatusApproved},
		{LoanStatusPending, LoanStatusRejected},
		{LoanStatusProcessing, LoanStatusApproved},
		{LoanStatusApproved, LoanStatusDisbursed},
		{LoanStatusApproved, LoanStatusRejected},
	}
	for _, tr := range allowed {
		if !LoanStatusTransitionAllowed(tr[0], tr[1]) {
			t.Errorf("%s -> %s should be allowed", tr[0], tr[1])
		}
	}

	blocked := [][2]string{
		{LoanStatusDisbursed, LoanStatusPending},
		{LoanStatusDisbursed, LoanStatusApproved},
		{LoanStatusRejected, LoanStatusApproved},
		{LoanStatusRejected, LoanStatusPending},
		{LoanStatusApproved, LoanStatusPending},
		{LoanStatusProcessing, LoanStatusDisbursed},
	}
	for _, tr := range blocked {
		if LoanStatusTransitionAllowed(tr[0], tr[1]) {
			t.Errorf("%s -> %s must be blocked", tr[0], tr[1])
		}
	}
}
