package enums

import "testing"

func TestParseBookStatus(t *testing.T) {
	status, err := ParseBookStatus("Available")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != BookStatusAvailable {
		t.Fatalf("expected Available, got %s", status)
	}

	if _, err := ParseBookStatus("available"); err == nil {
		t.Fatal("status values are case sensitive; expected an error")
	}
	if _, err := ParseBookStatus("Lost"); err == nil {
		t.Fatal("expected an error for unknown status")
	}
}

func TestBookStatusIsValid(t *testing.T) {
	if !BookStatusIssued.IsValid() {
		t.Fatal("Issued should be valid")
	}
	if BookStatus("Archived").IsValid() {
		t.Fatal("Archived should not be valid")
	}
}
