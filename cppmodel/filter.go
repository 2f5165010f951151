package cppmodel

import (
	"path/filepath"
	"strings"
)

// Filter selects which declarations enter a batch. Paths are matched
// against class paths (free functions match their include unit); a
// leading ! makes a pattern an exclusion. Later patterns win.
type Filter struct {
	Paths []string
	Units []string
}

func (this *Filter) IncludePath(path string) bool {
	if this == nil || len(this.Paths) == 0 {
		return true
	}
	//globs match on _ separated paths
	path = strings.ReplaceAll(path, "::", "_")
	var include bool
	for _, filterPath := range this.Paths {
		var negative bool
		if filterPath[0] == '!' {
			negative = true
			filterPath = filterPath[1:]
		}
		match, _ := filepath.Match(filterPath, path)
		if match {
			include = !negative
		}
	}
	return include
}

func (this *Filter) IncludeUnit(unit string) bool {
	if this == nil || len(this.Units) == 0 {
		return true
	}
	for _, filterUnit := range this.Units {
		if strings.EqualFold(filterUnit, unit) {
			return true
		}
	}
	return false
}

// IncludeFunction applies the path filter to a declaration: methods by
// their enclosing class path, free functions by their include unit.
func (this *Filter) IncludeFunction(f *Function) bool {
	if f.Member != nil {
		return this.IncludePath(f.ClassPath())
	}
	return this.IncludeUnit(f.Unit)
}
