package tuning

import (
	"errors"
	"testing"

	"github.com/Faultbox/nightyard/internal/settings"
)

func TestEveryBindingReachesState(t *testing.T) {
	r := NewRegistry()
	s := settings.Defaults()

	seen := make(map[string]bool)
	for _, b := range r.Bindings() {
		if seen[b.Key] {
			t.Errorf("duplicate binding %s", b.Key)
		}
		seen[b.Key] = true

		if _, err := r.Get(&s, b.Key); err != nil {
			t.Errorf("Get(%s) error = %v", b.Key, err)
		}
		if b.Kind == Float || b.Kind == Int {
			if b.Min > b.Max {
				t.Errorf("%s: min %v > max %v", b.Key, b.Min, b.Max)
			}
		}
	}
	if len(seen) != 45 {
		t.Errorf("bindings = %d, want 45", len(seen))
	}
}

func TestSetAndGet(t *testing.T) {
	r := NewRegistry()
	s := settings.Defaults()

	tests := []struct {
		key, in, want string
	}{
		{"fogDensity", "0.03", "0.03"},
		{"starCount", "5000", "5000"},
		{"horrorEnabled", "true", "true"},
		{"skyZenithColor", "#FF00FF", "#ff00ff"},
		{"fogType", "linear", "linear"},
		{"village1Azimuth", " 90 ", "90"},
		{"moonIntensity", "1.2", "1.2"},
		{"moonY", "5", "10"},
		{"groundTiling", "32", "32"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if err := r.Set(&s, tt.key, tt.in); err != nil {
				t.Fatalf("Set(%s, %q) error = %v", tt.key, tt.in, err)
			}
			got, err := r.Get(&s, tt.key)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Get(%s) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
	if s.FogDensity != 0.03 || s.StarCount != 5000 || !s.HorrorEnabled {
		t.Errorf("state not updated: %+v", s)
	}
}

func TestSetClampsToRange(t *testing.T) {
	r := NewRegistry()
	s := settings.Defaults()

	if err := r.Set(&s, "fogDensity", "2"); err != nil {
		t.Fatal(err)
	}
	if s.FogDensity != 0.05 {
		t.Errorf("fogDensity = %v, want 0.05", s.FogDensity)
	}
	if err := r.Set(&s, "starCount", "10"); err != nil {
		t.Fatal(err)
	}
	if s.StarCount != 1000 {
		t.Errorf("starCount = %d, want 1000", s.StarCount)
	}
}

func TestSetErrors(t *testing.T) {
	r := NewRegistry()
	s := settings.Defaults()
	before := s

	tests := []struct {
		key, in string
		is      error
	}{
		{"moonIntensity", "1", ErrUnknownParam},
		{"fogDensity", "thick", ErrInvalidValue},
		{"starCount", "1.5", ErrInvalidValue},
		{"starAntiAlias", "maybe", ErrInvalidValue},
		{"fogColor", "grey", ErrInvalidValue},
		{"fogColor", "grey", settings.ErrInvalidColor},
		{"fogType", "volumetric", ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.in, func(t *testing.T) {
			err := r.Set(&s, tt.key, tt.in)
			if !errors.Is(err, tt.is) {
				t.Errorf("Set error = %v, want %v", err, tt.is)
			}
		})
	}
	if s != before {
		t.Error("failed Set modified the state")
	}
}

func TestReset(t *testing.T) {
	r := NewRegistry()
	s := settings.Defaults()
	_ = r.Set(&s, "starTint", "#000000")
	_ = r.Set(&s, "walkSpeed", "5")

	if err := r.Reset(&s, "starTint"); err != nil {
		t.Fatal(err)
	}
	if s.StarTint != settings.Defaults().StarTint {
		t.Errorf("starTint = %s, want default", s.StarTint)
	}
	if s.WalkSpeed != 5 {
		t.Errorf("Reset touched walkSpeed: %v", s.WalkSpeed)
	}

	r.ResetAll(&s)
	if s != settings.Defaults() {
		t.Errorf("ResetAll = %+v, want defaults", s)
	}

	if err := r.Reset(&s, "nope"); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("Reset(nope) error = %v", err)
	}
}

func TestOnChange(t *testing.T) {
	r := NewRegistry()
	s := settings.Defaults()

	var keys []string
	r.OnChange(func(key string, st *settings.State) {
		keys = append(keys, key)
		if st != &s {
			t.Error("listener got a different state")
		}
	})

	_ = r.Set(&s, "exposure", "1.2")
	_ = r.Set(&s, "exposure", "bright")
	_ = r.Reset(&s, "exposure")

	if len(keys) != 2 || keys[0] != "exposure" || keys[1] != "exposure" {
		t.Errorf("notified keys = %v, want two exposure changes", keys)
	}
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		in         string
		key, value string
		wantErr    bool
	}{
		{"fogDensity=0.03", "fogDensity", "0.03", false},
		{" starTint = #ffffff", "starTint", " #ffffff", false},
		{"fogColor=", "fogColor", "", false},
		{"fogDensity", "", "", true},
		{"=0.3", "", "", true},
	}
	for _, tt := range tests {
		key, value, err := ParseAssignment(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAssignment(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if key != tt.key || value != tt.value {
			t.Errorf("ParseAssignment(%q) = (%q, %q), want (%q, %q)", tt.in, key, value, tt.key, tt.value)
		}
	}
}

func TestApply(t *testing.T) {
	r := NewRegistry()
	s := settings.Defaults()

	err := r.Apply(&s, []string{"starCount=2000", "horrorEnabled=1", "fogType=linear"})
	if err != nil {
		t.Fatal(err)
	}
	if s.StarCount != 2000 || !s.HorrorEnabled || s.FogType != settings.FogLinear {
		t.Errorf("Apply result = %+v", s)
	}

	if err := r.Apply(&s, []string{"bogus"}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Apply(bogus) error = %v", err)
	}
}

func TestKindString(t *testing.T) {
	if Color.String() != "color" || Kind(99).String() != "unknown" {
		t.Error("Kind.String mismatch")
	}
}
