package cmodel_test

import (
	"testing"

	"github.com/zzl/go-cppapi-gen/cmodel"
	"github.com/zzl/go-cppapi-gen/cppmodel"
)

func TestTranslatePassThrough(t *testing.T) {
	tests := []struct {
		name string
		typ  *cppmodel.Type
	}{
		{"void", cppmodel.Void()},
		{"int", cppmodel.Numeric(cppmodel.NumInt)},
		{"double", cppmodel.Numeric(cppmodel.NumDouble)},
		{"intptr", &cppmodel.Type{Kind: cppmodel.TypeKindIntPtr}},
		{"enum", cppmodel.Enum("Qt::Alignment")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bt, err := cmodel.Translate(tt.typ)
			if err != nil {
				t.Fatalf("Translate: %v", err)
			}
			if bt.Boundary != tt.typ {
				t.Errorf("expected pass-through, got %#v", bt.Boundary)
			}
			if bt.Conversion.Indirection != cmodel.IndirectionNoChange || bt.Conversion.FlagsToInt {
				t.Errorf("expected empty conversion, got %#v", bt.Conversion)
			}
		})
	}
}

func TestTranslateReference(t *testing.T) {
	ref := cppmodel.ConstReference(cppmodel.Class("Point"))
	bt, err := cmodel.Translate(ref)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if bt.Boundary.Kind != cppmodel.TypeKindPointer ||
		bt.Boundary.PtrKind != cppmodel.PtrKindPointer {
		t.Fatalf("expected pointer boundary, got %#v", bt.Boundary)
	}
	if !bt.Boundary.Const {
		t.Errorf("const reference lost constness")
	}
	if bt.Boundary.Target.Kind != cppmodel.TypeKindClass {
		t.Errorf("expected class target, got %#v", bt.Boundary.Target)
	}
	if bt.Conversion.Indirection != cmodel.IndirectionReferenceToPointer {
		t.Errorf("expected ReferenceToPointer, got %v", bt.Conversion.Indirection)
	}
}

func TestTranslateRValueRefRejected(t *testing.T) {
	rref := &cppmodel.Type{
		Kind:    cppmodel.TypeKindPointer,
		PtrKind: cppmodel.PtrKindRValueRef,
		Target:  cppmodel.Class("Point"),
	}
	_, err := cmodel.Translate(rref)
	if _, ok := err.(*cmodel.UnsupportedTypeError); !ok {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
}

func TestTranslateByValueClass(t *testing.T) {
	bt, err := cmodel.Translate(cppmodel.Class("Point"))
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if bt.Boundary.Kind != cppmodel.TypeKindPointer {
		t.Fatalf("by-value class must cross as pointer, got %#v", bt.Boundary)
	}
	if bt.Boundary.Target.Kind != cppmodel.TypeKindClass || bt.Boundary.Target.Path != "Point" {
		t.Errorf("expected Point target, got %#v", bt.Boundary.Target)
	}
	if bt.Conversion.Indirection != cmodel.IndirectionValueToPointer {
		t.Errorf("expected ValueToPointer, got %v", bt.Conversion.Indirection)
	}
}

func TestTranslatePointerToClassStaysSingle(t *testing.T) {
	bt, err := cmodel.Translate(cppmodel.Pointer(cppmodel.Class("Widget")))
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if bt.Boundary.Kind != cppmodel.TypeKindPointer ||
		bt.Boundary.Target.Kind != cppmodel.TypeKindClass {
		t.Fatalf("expected single-level pointer to class, got %#v", bt.Boundary)
	}
	if bt.Conversion.Indirection != cmodel.IndirectionNoChange {
		t.Errorf("plain pointer must not record an indirection change")
	}
}

func TestTranslateFlagsWrapper(t *testing.T) {
	flags := cppmodel.Class("Alignment")
	flags.FlagsOf = "Qt::AlignmentFlag"
	flags.FlagsBase = cppmodel.NumUInt

	bt, err := cmodel.Translate(flags)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if bt.Boundary.Kind != cppmodel.TypeKindNumeric || bt.Boundary.Numeric != cppmodel.NumUInt {
		t.Fatalf("flags wrapper must cross as its base integer, got %#v", bt.Boundary)
	}
	if !bt.Conversion.FlagsToInt {
		t.Errorf("expected FlagsToInt conversion")
	}
	if bt.Conversion.Indirection != cmodel.IndirectionNoChange {
		t.Errorf("flags wrapper must not also record ValueToPointer")
	}
}

func TestTranslateTemplateParamRejected(t *testing.T) {
	_, err := cmodel.Translate(&cppmodel.Type{Kind: cppmodel.TypeKindTemplateParam, Path: "T"})
	if _, ok := err.(*cmodel.UnsupportedTypeError); !ok {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
}

func TestTranslateFunctionPointer(t *testing.T) {
	fn := &cppmodel.Type{
		Kind:   cppmodel.TypeKindFunc,
		Return: cppmodel.Void(),
		Args: []*cppmodel.Type{
			cppmodel.Numeric(cppmodel.NumInt),
			cppmodel.Class("Event"), //by value inside the callback
		},
	}
	bt, err := cmodel.Translate(fn)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if bt.Boundary.Kind != cppmodel.TypeKindFunc {
		t.Fatalf("expected func boundary, got %#v", bt.Boundary)
	}
	if bt.Boundary.Args[1].Kind != cppmodel.TypeKindPointer {
		t.Errorf("by-value class inside a callback must cross as pointer, got %#v",
			bt.Boundary.Args[1])
	}
}

// checkNoByValueClass asserts the central ABI invariant on a boundary
// type tree.
func checkNoByValueClass(t *testing.T, typ *cppmodel.Type) {
	t.Helper()
	if typ == nil {
		return
	}
	if typ.Kind == cppmodel.TypeKindClass && !typ.IsFlagsWrapper() {
		t.Errorf("boundary contains a by-value class: %s", typ.Path)
	}
	if typ.Kind == cppmodel.TypeKindFunc {
		checkNoByValueClass(t, typ.Return)
		for _, arg := range typ.Args {
			checkNoByValueClass(t, arg)
		}
	}
}

func TestTranslateABIInvariant(t *testing.T) {
	inputs := []*cppmodel.Type{
		cppmodel.Class("Point"),
		cppmodel.Reference(cppmodel.Class("Point")),
		cppmodel.Pointer(cppmodel.Pointer(cppmodel.Class("Point"))),
		{
			Kind:   cppmodel.TypeKindFunc,
			Return: cppmodel.Class("Value"),
			Args:   []*cppmodel.Type{cppmodel.Class("Arg")},
		},
	}
	for _, input := range inputs {
		bt, err := cmodel.Translate(input)
		if err != nil {
			t.Fatalf("Translate: %v", err)
		}
		checkNoByValueClass(t, bt.Boundary)
	}
}
