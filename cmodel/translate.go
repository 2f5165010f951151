package cmodel

import (
	"github.com/zzl/go-cppapi-gen/cppmodel"
)

// Translate converts one native type into its boundary representation.
// The rules are ordered: flags wrappers win over the by-value class rule,
// template parameters and rvalue references have no boundary form.
func Translate(t *cppmodel.Type) (*BoundaryType, error) {
	switch t.Kind {
	case cppmodel.TypeKindVoid,
		cppmodel.TypeKindNumeric,
		cppmodel.TypeKindIntPtr,
		cppmodel.TypeKindEnum:
		return &BoundaryType{Original: t, Boundary: t}, nil

	case cppmodel.TypeKindPointer:
		if t.PtrKind == cppmodel.PtrKindRValueRef {
			return nil, &UnsupportedTypeError{Type: t,
				Reason: "rvalue reference has no stable boundary representation"}
		}
		target, err := translateTarget(t.Target)
		if err != nil {
			return nil, err
		}
		boundary := &cppmodel.Type{
			Kind:    cppmodel.TypeKindPointer,
			PtrKind: cppmodel.PtrKindPointer,
			Const:   t.Const,
			Target:  target,
		}
		bt := &BoundaryType{Original: t, Boundary: boundary}
		if t.PtrKind == cppmodel.PtrKindReference {
			bt.Conversion.Indirection = IndirectionReferenceToPointer
		}
		return bt, nil

	case cppmodel.TypeKindClass:
		if t.IsFlagsWrapper() {
			return &BoundaryType{
				Original:   t,
				Boundary:   cppmodel.Numeric(t.FlagsBase),
				Conversion: Conversion{FlagsToInt: true},
			}, nil
		}
		//values never cross by value
		return &BoundaryType{
			Original:   t,
			Boundary:   cppmodel.Pointer(t),
			Conversion: Conversion{Indirection: IndirectionValueToPointer},
		}, nil

	case cppmodel.TypeKindFunc:
		ret, err := Translate(t.Return)
		if err != nil {
			return nil, err
		}
		boundary := &cppmodel.Type{
			Kind:     cppmodel.TypeKindFunc,
			Return:   ret.Boundary,
			Variadic: t.Variadic,
		}
		for _, arg := range t.Args {
			argBt, err := Translate(arg)
			if err != nil {
				return nil, err
			}
			boundary.Args = append(boundary.Args, argBt.Boundary)
		}
		return &BoundaryType{Original: t, Boundary: boundary}, nil

	case cppmodel.TypeKindTemplateParam:
		return nil, &UnsupportedTypeError{Type: t,
			Reason: "template parameter has no concrete representation"}
	}
	return nil, &UnsupportedTypeError{Type: t, Reason: "unknown type kind"}
}

// translateTarget handles the type behind a pointer or reference. A class
// behind an indirection is not a by-value class, so it passes through
// unchanged instead of picking up another pointer level.
func translateTarget(t *cppmodel.Type) (*cppmodel.Type, error) {
	switch t.Kind {
	case cppmodel.TypeKindVoid,
		cppmodel.TypeKindNumeric,
		cppmodel.TypeKindIntPtr,
		cppmodel.TypeKindEnum,
		cppmodel.TypeKindClass:
		return t, nil
	case cppmodel.TypeKindPointer:
		if t.PtrKind == cppmodel.PtrKindRValueRef {
			return nil, &UnsupportedTypeError{Type: t,
				Reason: "rvalue reference has no stable boundary representation"}
		}
		target, err := translateTarget(t.Target)
		if err != nil {
			return nil, err
		}
		return &cppmodel.Type{
			Kind:    cppmodel.TypeKindPointer,
			PtrKind: cppmodel.PtrKindPointer,
			Const:   t.Const,
			Target:  target,
		}, nil
	case cppmodel.TypeKindFunc:
		bt, err := Translate(t)
		if err != nil {
			return nil, err
		}
		return bt.Boundary, nil
	case cppmodel.TypeKindTemplateParam:
		return nil, &UnsupportedTypeError{Type: t,
			Reason: "template parameter has no concrete representation"}
	}
	return nil, &UnsupportedTypeError{Type: t, Reason: "unknown type kind"}
}
