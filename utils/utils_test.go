package utils

import "testing"

func TestCIdent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"getX", "getX"},
		{"operator+", "operator_"},
		{"2fast", "_2fast"},
		{"", "arg"},
		{"int", "int_"},
		{"with space", "with_space"},
	}
	for _, tt := range tests {
		if got := CIdent(tt.in); got != tt.want {
			t.Errorf("CIdent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Point", "point"},
		{"setPos", "set_pos"},
		{"HTTPServer", "http_server"},
		{"QWidget", "q_widget"},
		{"Vector3D", "vector3_d"},
		{"already_snake", "already_snake"},
	}
	for _, tt := range tests {
		if got := SnakeCase(tt.in); got != tt.want {
			t.Errorf("SnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSafeName(t *testing.T) {
	if got := SafeName("double"); got != "double_" {
		t.Errorf("SafeName(double) = %q", got)
	}
	if got := SafeName("value"); got != "value" {
		t.Errorf("SafeName(value) = %q", got)
	}
}
