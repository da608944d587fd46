package check

import (
	"testing"
)

func TestAcceptAll(t *testing.T) {
	v := &AcceptAll{}
	for _, value := range []string{"", "anything", "123", "\x00"} {
		if err := v.Validate(value, nil); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", value, err)
		}
	}
	// AcceptAll intentionally lacks the bad-values capability.
	if _, ok := any(v).(BadValueser); ok {
		t.Error("AcceptAll should not implement BadValueser")
	}
}

func TestNotEmpty(t *testing.T) {
	v := &NotEmpty{}
	if err := v.Validate("x", nil); err != nil {
		t.Errorf("Validate(x) = %v, want nil", err)
	}
	if err := v.Validate("", nil); !IsFieldError(err) {
		t.Errorf("Validate(\"\") = %v, want FieldError", err)
	}
}

func TestEmpty(t *testing.T) {
	v := &Empty{}
	if err := v.Validate("", nil); err != nil {
		t.Errorf("Validate(\"\") = %v, want nil", err)
	}
	if err := v.Validate("x", nil); !IsFieldError(err) {
		t.Errorf("Validate(x) = %v, want FieldError", err)
	}
}

func TestRegex(t *testing.T) {
	if _, err := NewRegex("("); err == nil {
		t.Error("NewRegex(\"(\") should fail to compile")
	}

	v, err := NewRegex(`^\d+$`)
	if err != nil {
		t.Fatalf("NewRegex() error: %v", err)
	}

	tests := []struct {
		value string
		ok    bool
	}{
		{"123", true},
		{"12a", false},
		{"", false},
	}
	for _, tt := range tests {
		err := v.Validate(tt.value, nil)
		if tt.ok && err != nil {
			t.Errorf("Validate(%q) = %v, want nil", tt.value, err)
		}
		if !tt.ok && !IsFieldError(err) {
			t.Errorf("Validate(%q) = %v, want FieldError", tt.value, err)
		}
	}
}

func TestInt(t *testing.T) {
	v := &Int{}
	tests := []struct {
		value string
		ok    bool
	}{
		{"0", true},
		{"-42", true},
		{"3.14", false},
		{"abc", false},
		{"", false},
	}
	for _, tt := range tests {
		err := v.Validate(tt.value, nil)
		if got := err == nil; got != tt.ok {
			t.Errorf("Validate(%q) ok = %v, want %v", tt.value, got, tt.ok)
		}
	}
}

func TestFloat(t *testing.T) {
	v := &Float{}
	tests := []struct {
		value string
		ok    bool
	}{
		{"0", true},
		{"3.14", true},
		{"-1e9", true},
		{"abc", false},
		{"", false},
	}
	for _, tt := range tests {
		err := v.Validate(tt.value, nil)
		if got := err == nil; got != tt.ok {
			t.Errorf("Validate(%q) ok = %v, want %v", tt.value, got, tt.ok)
		}
	}
}

func TestSet(t *testing.T) {
	v := NewSet("red", "green")
	if err := v.Validate("red", nil); err != nil {
		t.Errorf("Validate(red) = %v, want nil", err)
	}
	if err := v.Validate("blue", nil); !IsFieldError(err) {
		t.Errorf("Validate(blue) = %v, want FieldError", err)
	}
}

func TestRange(t *testing.T) {
	v := NewRange(0, 150)
	tests := []struct {
		value string
		ok    bool
	}{
		{"0", true},
		{"150", true},
		{"75.5", true},
		{"-1", false},
		{"151", false},
		{"old", false},
	}
	for _, tt := range tests {
		err := v.Validate(tt.value, nil)
		if got := err == nil; got != tt.ok {
			t.Errorf("Validate(%q) ok = %v, want %v", tt.value, got, tt.ok)
		}
	}
}

func TestUnique(t *testing.T) {
	v := NewUnique()
	if err := v.Validate("a", nil); err != nil {
		t.Errorf("first a = %v, want nil", err)
	}
	if err := v.Validate("b", nil); err != nil {
		t.Errorf("first b = %v, want nil", err)
	}
	if err := v.Validate("a", nil); !IsFieldError(err) {
		t.Errorf("second a = %v, want FieldError", err)
	}
}

func TestUnique_CompositeKey(t *testing.T) {
	v := NewUnique("region")

	rowEU := map[string]string{"region": "eu"}
	rowUS := map[string]string{"region": "us"}

	if err := v.Validate("1", rowEU); err != nil {
		t.Errorf("(1, eu) = %v, want nil", err)
	}
	// Same id, different sibling value: still unique.
	if err := v.Validate("1", rowUS); err != nil {
		t.Errorf("(1, us) = %v, want nil", err)
	}
	if err := v.Validate("1", rowEU); !IsFieldError(err) {
		t.Errorf("repeat (1, eu) = %v, want FieldError", err)
	}
}
