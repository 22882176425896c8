package normalize_test

import (
	"testing"

	"github.com/ecochef/ecochef/internal/app/system/normalize"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Cook@Example.COM", "cook@example.com"},
		{"  cook@example.com ", "cook@example.com"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := normalize.Email(c.in); got != c.want {
			t.Errorf("Email(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Ada   Lovelace ", "Ada Lovelace"},
		{"Ada", "Ada"},
		{"", ""},
	}
	for _, c := range cases {
		if got := normalize.Name(c.in); got != c.want {
			t.Errorf("Name(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}
