package cmodel

import (
	"log"

	"github.com/zzl/go-cppapi-gen/cppmodel"
)

// ModelBuilder turns a filtered batch of native declarations into a named
// boundary model. One builder runs one batch; nothing is mutated after
// Build returns.
type ModelBuilder struct {
	functions []*cppmodel.Function
	filter    *cppmodel.Filter
}

func NewModelBuilder(functions []*cppmodel.Function, filter *cppmodel.Filter) *ModelBuilder {
	return &ModelBuilder{
		functions: functions,
		filter:    filter,
	}
}

func (this *ModelBuilder) Build() (*Model, error) {
	var candidates []*Candidate
	var skipped []*SkippedDecl

	order := 0
	for _, f := range this.functions {
		if !this.filter.IncludeFunction(f) {
			continue
		}
		cands, err := BuildCandidates(f, order)
		if err != nil {
			if !isDeclError(err) {
				return nil, err
			}
			skipped = append(skipped, &SkippedDecl{Source: f, Reason: err})
			log.Printf("skipping %s (%s): %v", f.Path, f.Origin, err)
			continue
		}
		candidates = append(candidates, cands...)
		order++
	}

	named, err := AssignNames(candidates)
	if err != nil {
		return nil, err
	}
	return &Model{Functions: named, Skipped: skipped}, nil
}

// isDeclError reports whether err is a per-declaration failure that drops
// only the enclosing declaration. Anything else aborts the batch.
func isDeclError(err error) bool {
	switch err.(type) {
	case *UnsupportedTypeError, *VariadicUnsupportedError, *ArityMismatchError:
		return true
	}
	return false
}

// BuildCandidates produces the one or two boundary functions a native
// declaration requires. order is the declaration's position in the batch
// and becomes the deterministic naming tiebreak.
func BuildCandidates(f *cppmodel.Function, order int) ([]*Candidate, error) {
	member := f.Member
	if member != nil && member.Static && member.Kind == cppmodel.MethodKindConstructor {
		log.Panic("static constructor candidate: engine defect")
	}

	if f.IsOperator() {
		info := cppmodel.LookupOperator(member.Operator)
		if info == nil {
			log.Panic("unclassified operator kind: engine defect")
		}
		operands := len(f.Arguments)
		if !member.Static {
			operands++
		}
		if info.FixedArity != cppmodel.ArityUnconstrained && operands != info.FixedArity {
			return nil, &ArityMismatchError{Function: f, Want: info.FixedArity, Got: operands}
		}
		if f.Variadic && !info.AllowsVariadic {
			return nil, &VariadicUnsupportedError{Function: f}
		}
	} else if f.Variadic {
		return nil, &VariadicUnsupportedError{Function: f}
	}

	var args []*Argument
	if member != nil && !member.Static && member.Kind != cppmodel.MethodKindConstructor {
		thisType := &cppmodel.Type{
			Kind:    cppmodel.TypeKindPointer,
			PtrKind: cppmodel.PtrKindPointer,
			Const:   member.Const,
			Target:  cppmodel.Class(f.ClassPath()),
		}
		args = append(args, &Argument{
			Name: "self",
			Type: &BoundaryType{Original: thisType, Boundary: thisType},
			Role: RoleThis,
		})
	}

	for n, arg := range f.Arguments {
		bt, err := Translate(arg.Type)
		if err != nil {
			return nil, err
		}
		args = append(args, &Argument{
			Name:  arg.Name,
			Type:  bt,
			Role:  RolePositional,
			Index: n,
		})
	}

	effectiveReturn := f.ReturnType
	switch {
	case f.IsConstructor():
		effectiveReturn = cppmodel.Class(f.ClassPath())
	case f.IsDestructor():
		effectiveReturn = cppmodel.Void()
	case effectiveReturn == nil:
		effectiveReturn = cppmodel.Void()
	}

	byValueClass := effectiveReturn.Kind == cppmodel.TypeKindClass &&
		!effectiveReturn.IsFlagsWrapper()
	important := byValueClass || f.IsDestructor()

	if !important {
		ret, err := Translate(effectiveReturn)
		if err != nil {
			return nil, err
		}
		return []*Candidate{{
			Source:     f,
			Place:      PlaceHeap,
			Arguments:  args,
			ReturnType: ret,
			Order:      order,
		}}, nil
	}

	if f.IsDestructor() {
		//delete form and in-place form; neither returns nor constructs
		voidRet := &BoundaryType{Original: cppmodel.Void(), Boundary: cppmodel.Void()}
		return []*Candidate{
			{Source: f, Place: PlaceHeap, Arguments: args, ReturnType: voidRet, Order: order},
			{Source: f, Place: PlaceStack, Arguments: args, ReturnType: voidRet, Order: order},
		}, nil
	}

	classPtr := &BoundaryType{
		Original:   effectiveReturn,
		Boundary:   cppmodel.Pointer(effectiveReturn),
		Conversion: Conversion{Indirection: IndirectionValueToPointer},
	}

	heap := &Candidate{
		Source:     f,
		Place:      PlaceHeap,
		Arguments:  args,
		ReturnType: classPtr,
		Order:      order,
	}

	stackArgs := append(append([]*Argument(nil), args...), &Argument{
		Name: "output",
		Type: classPtr,
		Role: RoleReturnOutput,
	})
	stack := &Candidate{
		Source:     f,
		Place:      PlaceStack,
		Arguments:  stackArgs,
		ReturnType: &BoundaryType{Original: cppmodel.Void(), Boundary: cppmodel.Void()},
		Order:      order,
	}

	return []*Candidate{heap, stack}, nil
}
