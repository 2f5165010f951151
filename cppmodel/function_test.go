package cppmodel

import "testing"

func TestOriginString(t *testing.T) {
	tests := []struct {
		origin Origin
		want   string
	}{
		{Origin{}, "<unknown>"},
		{Origin{File: "widgets.yaml", Line: 12}, "widgets.yaml:12"},
		{Origin{File: "widgets.yaml", Line: 0}, "widgets.yaml:0"},
	}
	for _, tt := range tests {
		if got := tt.origin.String(); got != tt.want {
			t.Errorf("Origin%v.String() = %q, want %q", tt.origin, got, tt.want)
		}
	}
}

func TestFunctionNameAndClassPath(t *testing.T) {
	m := &Function{Path: "Qt::Widget::setPos", Member: &Member{}}
	if m.Name() != "setPos" {
		t.Errorf("Name() = %q", m.Name())
	}
	if m.ClassPath() != "Qt::Widget" {
		t.Errorf("ClassPath() = %q", m.ClassPath())
	}

	free := &Function{Path: "clamp"}
	if free.Name() != "clamp" {
		t.Errorf("free Name() = %q", free.Name())
	}
	if free.ClassPath() != "" {
		t.Errorf("free ClassPath() = %q", free.ClassPath())
	}
}
