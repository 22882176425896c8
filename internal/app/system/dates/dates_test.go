package dates_test

import (
	"testing"
	"time"

	"github.com/ecochef/ecochef/internal/app/system/dates"
)

func TestDisplay(t *testing.T) {
	d, err := dates.ParseStored("2024-03-05")
	if err != nil {
		t.Fatalf("ParseStored failed: %v", err)
	}
	if got := dates.Display(d); got != "05/03/2024" {
		t.Errorf("Display: got %q, want %q", got, "05/03/2024")
	}
}

func TestDisplayPtr_NilStaysNil(t *testing.T) {
	if got := dates.DisplayPtr(nil); got != nil {
		t.Errorf("DisplayPtr(nil): got %q, want nil", *got)
	}
}

func TestDisplayPtr_Value(t *testing.T) {
	d := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	got := dates.DisplayPtr(&d)
	if got == nil {
		t.Fatal("DisplayPtr: got nil, want value")
	}
	if *got != "01/12/2024" {
		t.Errorf("DisplayPtr: got %q, want %q", *got, "01/12/2024")
	}
}

func TestParseStored_RFC3339(t *testing.T) {
	d, err := dates.ParseStored("2024-03-05T10:30:00Z")
	if err != nil {
		t.Fatalf("ParseStored failed: %v", err)
	}
	if d.Day() != 5 || d.Month() != time.March || d.Year() != 2024 {
		t.Errorf("unexpected date: %v", d)
	}
}

func TestParseStored_Invalid(t *testing.T) {
	if _, err := dates.ParseStored("05/03/2024"); err == nil {
		t.Error("expected error for display-form input")
	}
}

func TestParseStoredPtr(t *testing.T) {
	got, err := dates.ParseStoredPtr("")
	if err != nil {
		t.Fatalf("ParseStoredPtr(\"\") errored: %v", err)
	}
	if got != nil {
		t.Errorf("ParseStoredPtr(\"\"): got %v, want nil", got)
	}

	got, err = dates.ParseStoredPtr("2024-03-05")
	if err != nil {
		t.Fatalf("ParseStoredPtr failed: %v", err)
	}
	if got == nil || got.Day() != 5 {
		t.Errorf("ParseStoredPtr: got %v", got)
	}
}
