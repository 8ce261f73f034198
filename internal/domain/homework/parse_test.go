package homework

import (
	"errors"
	"strings"
	"testing"
)

func TestParseStatusApproved(t *testing.T) {
	record := map[string]any{"homework_name": "diplom1", "status": "approved"}

	message, err := ParseStatus(record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(message, "diplom1") {
		t.Errorf("message does not mention the homework name: %q", message)
	}
	verdict, _ := Verdict("approved")
	if !strings.Contains(message, verdict) {
		t.Errorf("message does not contain the approved verdict: %q", message)
	}
}

func TestParseStatusWithReviewerComment(t *testing.T) {
	record := map[string]any{
		"homework_name":    "diplom1",
		"status":           "rejected",
		"reviewer_comment": "Поправь тесты",
	}

	message, err := ParseStatus(record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(message, "Поправь тесты") {
		t.Errorf("message does not carry the reviewer comment: %q", message)
	}
}

func TestParseStatusUnknownStatus(t *testing.T) {
	record := map[string]any{"homework_name": "diplom1", "status": "in_review"}

	_, err := ParseStatus(record)
	var unknown *UnknownStatusError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownStatusError, got %v", err)
	}
	if unknown.Status != "in_review" {
		t.Errorf("Status = %q, want %q", unknown.Status, "in_review")
	}
	if !strings.Contains(err.Error(), "in_review") {
		t.Errorf("diagnostic does not name the unknown status: %q", err.Error())
	}
}

func TestParseStatusRecordNotAMapping(t *testing.T) {
	_, err := ParseStatus("not a record")
	var unknown *UnknownStatusError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownStatusError, got %v", err)
	}
}

func TestKnownStatuses(t *testing.T) {
	for _, status := range []string{"approved", "reviewing", "rejected"} {
		if !KnownStatus(status) {
			t.Errorf("status %q should be known", status)
		}
	}
	if KnownStatus("in_review") {
		t.Error("in_review should not be a known status")
	}
}
