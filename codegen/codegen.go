package codegen

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zzl/go-cppapi-gen/cmodel"
	"github.com/zzl/go-cppapi-gen/cppmodel"
	"github.com/zzl/go-cppapi-gen/utils"
)

// Generator prints the C header for one named boundary model.
type Generator struct {
	model *cmodel.Model

	OutputDir  string
	HeaderName string
	ApiName    string
}

func NewGenerator(model *cmodel.Model) *Generator {
	return &Generator{model: model}
}

func (this *Generator) Gen() {
	code := this.GenHeader()

	headerName := this.HeaderName
	if headerName == "" {
		headerName = "bridge.h"
	}
	os.MkdirAll(this.OutputDir, os.ModePerm)
	filePath := filepath.Join(this.OutputDir, headerName)
	err := os.WriteFile(filePath, []byte(code), 0666)
	if err != nil {
		log.Panic(err)
	}
}

func (this *Generator) GenHeader() string {
	apiName := this.ApiName
	if apiName == "" {
		apiName = "cppapi"
	}
	guard := strings.ToUpper(utils.CIdent(apiName)) + "_BRIDGE_H"

	var code string
	code += "#ifndef " + guard + "\n"
	code += "#define " + guard + "\n\n"
	code += "#include <stdint.h>\n"
	code += "#include <stddef.h>\n"
	code += "#include <stdbool.h>\n\n"
	code += "#ifdef __cplusplus\n"
	code += "extern \"C\" {\n"
	code += "#endif\n\n"

	classNames, enumNames := this.collectTypeNames()
	if len(classNames) > 0 {
		code += "// opaque class types\n\n"
		for _, name := range classNames {
			code += "typedef struct " + name + " " + name + ";\n"
		}
		code += "\n"
	}
	if len(enumNames) > 0 {
		code += "// enums cross as plain int\n\n"
		for _, name := range enumNames {
			code += "typedef int " + name + ";\n"
		}
		code += "\n"
	}

	var lastScope string
	for _, nf := range this.model.Functions {
		scope := nf.Candidate.Source.ClassPath()
		if scope == "" {
			scope = nf.Candidate.Source.Unit
		}
		if scope != lastScope {
			code += "// " + scope + "\n\n"
			lastScope = scope
		}
		code += this.genPrototype(nf)
	}

	code += "#ifdef __cplusplus\n"
	code += "}\n"
	code += "#endif\n\n"
	code += "#endif\n"
	return code
}

func (this *Generator) genPrototype(nf *cmodel.NamedFunction) string {
	code := this.cTypeName(nf.Candidate.ReturnType.Boundary)
	code += " " + nf.FinalName + "("
	if len(nf.Candidate.Arguments) == 0 {
		code += "void"
	}
	for n, arg := range nf.Candidate.Arguments {
		if n > 0 {
			code += ", "
		}
		code += this.cParam(arg)
	}
	code += ");\n\n"
	return code
}

func (this *Generator) cParam(arg *cmodel.Argument) string {
	t := arg.Type.Boundary
	name := utils.CIdent(arg.Name)
	if t.Kind == cppmodel.TypeKindFunc {
		code := this.cTypeName(t.Return) + " (*" + name + ")("
		if len(t.Args) == 0 {
			code += "void"
		}
		for n, a := range t.Args {
			if n > 0 {
				code += ", "
			}
			code += this.cTypeName(a)
		}
		if t.Variadic {
			code += ", ..."
		}
		code += ")"
		return code
	}
	return this.cTypeName(t) + " " + name
}

func (this *Generator) cTypeName(t *cppmodel.Type) string {
	switch t.Kind {
	case cppmodel.TypeKindVoid:
		return "void"
	case cppmodel.TypeKindNumeric:
		return t.Numeric.CName()
	case cppmodel.TypeKindIntPtr:
		return "intptr_t"
	case cppmodel.TypeKindEnum:
		return cName(t.Path)
	case cppmodel.TypeKindClass:
		return cName(t.Path)
	case cppmodel.TypeKindPointer:
		name := this.cTypeName(t.Target) + "*"
		if t.Const {
			name = "const " + name
		}
		return name
	case cppmodel.TypeKindFunc:
		//bare function pointer type outside a parameter position
		code := this.cTypeName(t.Return) + " (*)("
		for n, a := range t.Args {
			if n > 0 {
				code += ", "
			}
			code += this.cTypeName(a)
		}
		code += ")"
		return code
	}
	log.Panic("untranslated type reached codegen: engine defect")
	return ""
}

// collectTypeNames gathers every class and enum referenced by the model's
// boundary signatures, for the typedef block. Sorted for stable output.
func (this *Generator) collectTypeNames() ([]string, []string) {
	classSet := make(map[string]bool)
	enumSet := make(map[string]bool)
	var walk func(t *cppmodel.Type)
	walk = func(t *cppmodel.Type) {
		if t == nil {
			return
		}
		switch t.Kind {
		case cppmodel.TypeKindClass:
			classSet[cName(t.Path)] = true
		case cppmodel.TypeKindEnum:
			enumSet[cName(t.Path)] = true
		case cppmodel.TypeKindPointer:
			walk(t.Target)
		case cppmodel.TypeKindFunc:
			walk(t.Return)
			for _, a := range t.Args {
				walk(a)
			}
		}
	}
	for _, nf := range this.model.Functions {
		walk(nf.Candidate.ReturnType.Boundary)
		for _, arg := range nf.Candidate.Arguments {
			walk(arg.Type.Boundary)
		}
	}

	var classNames []string
	for name := range classSet {
		classNames = append(classNames, name)
	}
	sort.Strings(classNames)
	var enumNames []string
	for name := range enumSet {
		enumNames = append(enumNames, name)
	}
	sort.Strings(enumNames)
	return classNames, enumNames
}

func cName(path string) string {
	return utils.CIdent(strings.ReplaceAll(path, "::", "_"))
}
