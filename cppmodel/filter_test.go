package cppmodel

import "testing"

func TestFilterIncludePath(t *testing.T) {
	tests := []struct {
		name    string
		paths   []string
		path    string
		include bool
	}{
		{"nil filter includes", nil, "Widget", true},
		{"exact match", []string{"Widget"}, "Widget", true},
		{"no match", []string{"Widget"}, "Button", false},
		{"glob", []string{"Q*"}, "QWidget", true},
		{"nested path matches on underscores", []string{"Qt_*"}, "Qt::Alignment", true},
		{"negation", []string{"*", "!Internal_*"}, "Internal::Detail", false},
		{"later pattern wins", []string{"!Widget", "Widget"}, "Widget", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := &Filter{Paths: tt.paths}
			if got := filter.IncludePath(tt.path); got != tt.include {
				t.Errorf("IncludePath(%q) = %v, want %v", tt.path, got, tt.include)
			}
		})
	}
}

func TestFilterIncludeUnit(t *testing.T) {
	filter := &Filter{Units: []string{"QtCore"}}
	if !filter.IncludeUnit("qtcore") {
		t.Errorf("unit match must be case-insensitive")
	}
	if filter.IncludeUnit("QtGui") {
		t.Errorf("unlisted unit included")
	}
}

func TestFilterIncludeFunction(t *testing.T) {
	filter := &Filter{Paths: []string{"Widget"}, Units: []string{"core"}}

	m := &Function{Path: "Widget::show", Member: &Member{}, Unit: "gui"}
	if !filter.IncludeFunction(m) {
		t.Errorf("method filtered by unit instead of class path")
	}
	free := &Function{Path: "clamp", Unit: "core"}
	if !filter.IncludeFunction(free) {
		t.Errorf("free function filtered by path instead of unit")
	}
	otherFree := &Function{Path: "clamp", Unit: "gui"}
	if filter.IncludeFunction(otherFree) {
		t.Errorf("free function from unlisted unit included")
	}
}

func TestNilFilterIncludesEverything(t *testing.T) {
	var filter *Filter
	if !filter.IncludeFunction(&Function{Path: "anything"}) {
		t.Errorf("nil filter must include everything")
	}
}
