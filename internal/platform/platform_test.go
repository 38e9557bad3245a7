package platform

import (
	"fmt"
	"runtime"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{"mac", Mac, false},
		{"linux", Linux, false},
		{"MAC", Mac, false},
		{" linux ", Linux, false},
		{"windows", "", true},
		{"", "", true},
		{"darwin", "", true}, // GOOS names are not keys
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("Parse(%q): expected error, got %q", c.in, got)
			}
			if !IsUnsupported(err) {
				t.Fatalf("Parse(%q): expected unsupported-platform error, got %v", c.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%q): unexpected err: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Parse(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFromGOOS(t *testing.T) {
	if k, err := FromGOOS("linux"); err != nil || k != Linux {
		t.Fatalf("FromGOOS(linux) = %q, %v", k, err)
	}
	if k, err := FromGOOS("darwin"); err != nil || k != Mac {
		t.Fatalf("FromGOOS(darwin) = %q, %v", k, err)
	}
	if _, err := FromGOOS("windows"); !IsUnsupported(err) {
		t.Fatalf("FromGOOS(windows): expected unsupported-platform error, got %v", err)
	}
}

func TestDetectMatchesHost(t *testing.T) {
	k, err := Detect()
	switch runtime.GOOS {
	case "linux":
		if err != nil || k != Linux {
			t.Fatalf("Detect() = %q, %v", k, err)
		}
	case "darwin":
		if err != nil || k != Mac {
			t.Fatalf("Detect() = %q, %v", k, err)
		}
	default:
		if !IsUnsupported(err) {
			t.Fatalf("Detect() on %s: expected unsupported-platform error, got %v", runtime.GOOS, err)
		}
	}
}

func TestInfoCompleteness(t *testing.T) {
	for _, k := range All() {
		in, ok := Lookup(k)
		if !ok {
			t.Fatalf("Lookup(%q): missing info", k)
		}
		if in.GOOS == "" || in.SharedLibrary == "" || in.CgoConstraint == "" || in.LoaderPathVar == "" {
			t.Fatalf("Lookup(%q): incomplete info: %+v", k, in)
		}
		if !strings.HasPrefix(in.SharedLibrary, "librgb.") {
			t.Fatalf("Lookup(%q): unexpected library name %q", k, in.SharedLibrary)
		}
		if !k.Known() {
			t.Fatalf("Known(%q) = false", k)
		}
	}
}

func TestUnsupportedErrorNamesSupportedSet(t *testing.T) {
	_, err := Parse("freebsd")
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, k := range All() {
		if !strings.Contains(msg, string(k)) {
			t.Fatalf("error message %q does not name supported key %q", msg, k)
		}
	}
	// wrapped errors still match
	wrapped := fmt.Errorf("resolve: %w", err)
	if !IsUnsupported(wrapped) {
		t.Fatalf("IsUnsupported(wrapped) = false")
	}
}
