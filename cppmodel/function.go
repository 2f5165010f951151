package cppmodel

import (
	"strconv"
	"strings"
)

type MethodKind int

const (
	MethodKindRegular     MethodKind = 0
	MethodKindConstructor MethodKind = 1
	MethodKindDestructor  MethodKind = 2
	MethodKindOperator    MethodKind = 3
)

type Visibility int

const (
	VisibilityPublic    Visibility = 0
	VisibilityProtected Visibility = 1
	VisibilityPrivate   Visibility = 2
)

// Member carries the class-membership facts of a method. Static is
// meaningless on free functions, which have no Member at all.
type Member struct {
	Kind        MethodKind
	Operator    OperatorKind
	Virtual     bool
	PureVirtual bool
	Const       bool
	Static      bool
	Visibility  Visibility
	Signal      bool
	Slot        bool
}

type Argument struct {
	Name       string
	Type       *Type
	HasDefault bool
}

// Origin identifies where a declaration came from. Diagnostics only,
// never part of naming.
type Origin struct {
	File string
	Line int
}

func (this Origin) String() string {
	if this.File == "" {
		return "<unknown>"
	}
	return this.File + ":" + strconv.Itoa(this.Line)
}

// Function is one native declaration: a free function when Member is nil,
// a method otherwise. Path is the full :: separated path including the
// function's own name.
type Function struct {
	Path       string
	Member     *Member
	ReturnType *Type
	Arguments  []*Argument
	Variadic   bool

	//include unit, used for free function scope prefixes
	Unit string

	Origin Origin
}

// Name returns the last path segment.
func (this *Function) Name() string {
	pos := strings.LastIndex(this.Path, "::")
	if pos == -1 {
		return this.Path
	}
	return this.Path[pos+2:]
}

// ClassPath returns the enclosing class path, or "" for free functions.
func (this *Function) ClassPath() string {
	if this.Member == nil {
		return ""
	}
	pos := strings.LastIndex(this.Path, "::")
	if pos == -1 {
		return ""
	}
	return this.Path[:pos]
}

func (this *Function) IsConstructor() bool {
	return this.Member != nil && this.Member.Kind == MethodKindConstructor
}

func (this *Function) IsDestructor() bool {
	return this.Member != nil && this.Member.Kind == MethodKindDestructor
}

func (this *Function) IsOperator() bool {
	return this.Member != nil && this.Member.Kind == MethodKindOperator
}
