package cmodel

import (
	"fmt"
	"strings"

	"github.com/zzl/go-cppapi-gen/cppmodel"
)

// UnsupportedTypeError marks a native type with no boundary
// representation. The enclosing declaration is dropped; the batch
// continues.
type UnsupportedTypeError struct {
	Type   *cppmodel.Type
	Reason string
}

func (e *UnsupportedTypeError) Error() string {
	return "unsupported type: " + e.Reason
}

// VariadicUnsupportedError marks a variadic declaration outside the call
// operator. The declaration is dropped; the batch continues.
type VariadicUnsupportedError struct {
	Function *cppmodel.Function
}

func (e *VariadicUnsupportedError) Error() string {
	return fmt.Sprintf("variadic function %s is not representable at the boundary", e.Function.Path)
}

// ArityMismatchError marks an operator declaration whose operand count
// does not match the operator table. The declaration is dropped.
type ArityMismatchError struct {
	Function *cppmodel.Function
	Want     int
	Got      int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("operator %s: %d operands, operator takes %d",
		e.Function.Path, e.Got, e.Want)
}

// AmbiguousOverloadError aborts the whole batch: a group of candidates
// shares one base name and no caption strategy separates them, or one
// group's suffixed name lands on another candidate's final name.
type AmbiguousOverloadError struct {
	BaseName   string
	Candidates []*Candidate
}

func (e *AmbiguousOverloadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ambiguous overload group %q:", e.BaseName)
	for _, c := range e.Candidates {
		fmt.Fprintf(&b, "\n- %s (%s, %s)", c.Source.Path, c.Place, c.Source.Origin)
	}
	return b.String()
}
