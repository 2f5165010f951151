package cmodel

import (
	"github.com/zzl/go-cppapi-gen/cppmodel"
)

type IndirectionChange int

const (
	IndirectionNoChange           IndirectionChange = 0
	IndirectionValueToPointer     IndirectionChange = 1
	IndirectionReferenceToPointer IndirectionChange = 2
)

// Conversion records what a caller-side wrapper must do to move one value
// across the boundary.
type Conversion struct {
	Indirection IndirectionChange
	FlagsToInt  bool
}

// BoundaryType pairs a native type with its ABI-safe representation.
// Boundary never contains a class passed by value.
type BoundaryType struct {
	Original   *cppmodel.Type
	Boundary   *cppmodel.Type
	Conversion Conversion
}

type ArgRole int

const (
	RoleThis         ArgRole = 0
	RolePositional   ArgRole = 1
	RoleReturnOutput ArgRole = 2
)

// Argument is one boundary function argument in call-position order.
// Index is the source declaration argument index, meaningful only for
// RolePositional.
type Argument struct {
	Name  string
	Type  *BoundaryType
	Role  ArgRole
	Index int
}

type AllocationPlace int

const (
	PlaceHeap  AllocationPlace = 0
	PlaceStack AllocationPlace = 1
)

func (p AllocationPlace) String() string {
	if p == PlaceStack {
		return "stack"
	}
	return "heap"
}

// Candidate is one boundary function before naming. Immutable once built.
// Order is the source declaration position within the batch; it is the
// secondary sort key that keeps naming deterministic.
type Candidate struct {
	Source     *cppmodel.Function
	Place      AllocationPlace
	Arguments  []*Argument
	ReturnType *BoundaryType
	Order      int
}

// NamedFunction is the terminal artifact handed to the emitter.
type NamedFunction struct {
	Candidate *Candidate
	BaseName  string
	Suffix    string
	FinalName string
}

// SkippedDecl records a declaration dropped from the boundary surface,
// with the reason, for diagnostics.
type SkippedDecl struct {
	Source *cppmodel.Function
	Reason error
}

// Model is the output of one batch run.
type Model struct {
	Functions []*NamedFunction
	Skipped   []*SkippedDecl
}
