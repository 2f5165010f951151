package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zzl/go-cppapi-gen/cmodel"
	"github.com/zzl/go-cppapi-gen/cppmodel"
)

func buildModel(t *testing.T, funcs ...*cppmodel.Function) *cmodel.Model {
	t.Helper()
	model, err := cmodel.NewModelBuilder(funcs, nil).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return model
}

func testFunctions() []*cppmodel.Function {
	ctor := &cppmodel.Function{
		Path:   "Widget::Widget",
		Member: &cppmodel.Member{Kind: cppmodel.MethodKindConstructor},
		Arguments: []*cppmodel.Argument{
			{Name: "x", Type: cppmodel.Numeric(cppmodel.NumInt)},
		},
		Unit: "widgets",
	}
	dtor := &cppmodel.Function{
		Path:   "Widget::~Widget",
		Member: &cppmodel.Member{Kind: cppmodel.MethodKindDestructor},
		Unit:   "widgets",
	}
	getX := &cppmodel.Function{
		Path:       "Widget::getX",
		Member:     &cppmodel.Member{Const: true},
		ReturnType: cppmodel.Numeric(cppmodel.NumInt),
		Unit:       "widgets",
	}
	align := &cppmodel.Function{
		Path:       "Widget::alignment",
		Member:     &cppmodel.Member{Const: true},
		ReturnType: cppmodel.Enum("Qt::Alignment"),
		Unit:       "widgets",
	}
	callback := &cppmodel.Function{
		Path:   "Widget::onClick",
		Member: &cppmodel.Member{},
		Arguments: []*cppmodel.Argument{
			{Name: "handler", Type: &cppmodel.Type{
				Kind:   cppmodel.TypeKindFunc,
				Return: cppmodel.Void(),
				Args:   []*cppmodel.Type{cppmodel.Numeric(cppmodel.NumInt)},
			}},
		},
		Unit: "widgets",
	}
	clamp := &cppmodel.Function{
		Path:       "clamp",
		ReturnType: cppmodel.Numeric(cppmodel.NumInt),
		Arguments: []*cppmodel.Argument{
			{Name: "v", Type: cppmodel.Numeric(cppmodel.NumInt)},
		},
		Unit: "mathutil",
	}
	return []*cppmodel.Function{ctor, dtor, getX, align, callback, clamp}
}

func TestGenHeader(t *testing.T) {
	model := buildModel(t, testFunctions()...)
	gen := NewGenerator(model)
	gen.ApiName = "demo"
	header := gen.GenHeader()

	wantLines := []string{
		"#ifndef DEMO_BRIDGE_H",
		"extern \"C\" {",
		"typedef struct Widget Widget;",
		"typedef int Qt_Alignment;",
		"Widget* Widget_new(int x);",
		"void Widget_constructor(int x, Widget* output);",
		"void Widget_delete(Widget* self);",
		"void Widget_destructor(Widget* self);",
		"int Widget_getX(const Widget* self);",
		"Qt_Alignment Widget_alignment(const Widget* self);",
		"void Widget_onClick(Widget* self, void (*handler)(int));",
		"int mathutil_G_clamp(int v);",
	}
	for _, line := range wantLines {
		if !strings.Contains(header, line) {
			t.Errorf("header missing %q\n%s", line, header)
		}
	}
}

func TestGenHeaderNoArgsPrototype(t *testing.T) {
	count := &cppmodel.Function{
		Path:       "Widget::count",
		Member:     &cppmodel.Member{Static: true},
		ReturnType: cppmodel.Numeric(cppmodel.NumInt),
		Unit:       "widgets",
	}
	model := buildModel(t, count)
	header := NewGenerator(model).GenHeader()
	if !strings.Contains(header, "int Widget_count(void);") {
		t.Errorf("parameterless prototype must spell void:\n%s", header)
	}
}

func TestGenHeaderDeterministic(t *testing.T) {
	first := NewGenerator(buildModel(t, testFunctions()...)).GenHeader()
	second := NewGenerator(buildModel(t, testFunctions()...)).GenHeader()
	if first != second {
		t.Fatalf("two runs produced different headers")
	}
}

func TestGenWritesFile(t *testing.T) {
	model := buildModel(t, testFunctions()...)
	gen := NewGenerator(model)
	gen.OutputDir = t.TempDir()
	gen.HeaderName = "demo.h"
	gen.Gen()

	data, err := os.ReadFile(filepath.Join(gen.OutputDir, "demo.h"))
	if err != nil {
		t.Fatalf("header not written: %v", err)
	}
	if !strings.Contains(string(data), "Widget_new") {
		t.Errorf("written header incomplete")
	}
}
