package apidesc

import (
	"fmt"
	"strings"

	"github.com/zzl/go-cppapi-gen/cppmodel"
)

// TypeRegistry resolves bare names in declaration type strings. Names are
// collected in a first pass over every loaded file, so forward references
// between files work.
type TypeRegistry struct {
	enums   map[string]bool
	classes map[string]*classInfo
}

type classInfo struct {
	flagsOf   string
	flagsBase cppmodel.NumericKind
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		enums:   make(map[string]bool),
		classes: make(map[string]*classInfo),
	}
}

func (this *TypeRegistry) AddEnum(path string) {
	this.enums[path] = true
}

func (this *TypeRegistry) AddClass(path string, flagsOf string, flagsBase cppmodel.NumericKind) {
	this.classes[path] = &classInfo{flagsOf: flagsOf, flagsBase: flagsBase}
}

var numericNames = map[string]cppmodel.NumericKind{
	"bool":               cppmodel.NumBool,
	"char":               cppmodel.NumChar,
	"signed char":        cppmodel.NumChar,
	"unsigned char":      cppmodel.NumUChar,
	"short":              cppmodel.NumShort,
	"unsigned short":     cppmodel.NumUShort,
	"int":                cppmodel.NumInt,
	"unsigned":           cppmodel.NumUInt,
	"unsigned int":       cppmodel.NumUInt,
	"long":               cppmodel.NumLong,
	"unsigned long":      cppmodel.NumULong,
	"long long":          cppmodel.NumLongLong,
	"unsigned long long": cppmodel.NumULongLong,
	"int8_t":             cppmodel.NumInt8,
	"uint8_t":            cppmodel.NumUInt8,
	"int16_t":            cppmodel.NumInt16,
	"uint16_t":           cppmodel.NumUInt16,
	"int32_t":            cppmodel.NumInt32,
	"uint32_t":           cppmodel.NumUInt32,
	"int64_t":            cppmodel.NumInt64,
	"uint64_t":           cppmodel.NumUInt64,
	"float":              cppmodel.NumFloat,
	"double":             cppmodel.NumDouble,
}

var intPtrNames = map[string]bool{
	"intptr_t":  true,
	"uintptr_t": true,
	"size_t":    true,
	"ptrdiff_t": true,
	"ssize_t":   true,
}

// ParseType parses a C++-ish type string: qualifiers, pointers,
// references, template argument lists, and ret (*)(args) function
// pointers. templateParams are the names in scope that resolve to
// template parameters rather than classes.
func (this *TypeRegistry) ParseType(s string, templateParams []string) (*cppmodel.Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty type")
	}

	if ret, args, variadic, ok, err := splitFuncPointer(s); ok {
		if err != nil {
			return nil, err
		}
		retType, err := this.ParseType(ret, templateParams)
		if err != nil {
			return nil, err
		}
		fn := &cppmodel.Type{
			Kind:     cppmodel.TypeKindFunc,
			Return:   retType,
			Variadic: variadic,
		}
		for _, arg := range args {
			argType, err := this.ParseType(arg, templateParams)
			if err != nil {
				return nil, err
			}
			fn.Args = append(fn.Args, argType)
		}
		return fn, nil
	}

	//trailing indirections bind outward
	if strings.HasSuffix(s, "&&") {
		target, err := this.ParseType(s[:len(s)-2], templateParams)
		if err != nil {
			return nil, err
		}
		return unwrapConst(target, cppmodel.PtrKindRValueRef)
	}
	if strings.HasSuffix(s, "&") {
		target, err := this.ParseType(s[:len(s)-1], templateParams)
		if err != nil {
			return nil, err
		}
		return unwrapConst(target, cppmodel.PtrKindReference)
	}
	if strings.HasSuffix(s, "*") {
		target, err := this.ParseType(s[:len(s)-1], templateParams)
		if err != nil {
			return nil, err
		}
		return unwrapConst(target, cppmodel.PtrKindPointer)
	}

	var isConst bool
	if strings.HasPrefix(s, "const ") {
		isConst = true
		s = strings.TrimSpace(s[len("const "):])
	} else if strings.HasSuffix(s, " const") {
		isConst = true
		s = strings.TrimSpace(s[:len(s)-len(" const")])
	}

	t, err := this.parseBase(s, templateParams)
	if err != nil {
		return nil, err
	}
	if isConst {
		t = t.Clone()
		t.Const = true
	}
	return t, nil
}

// unwrapConst moves a const marker from the parsed pointee onto the
// enclosing indirection, which is where the model keeps it.
func unwrapConst(target *cppmodel.Type, kind cppmodel.PtrKind) (*cppmodel.Type, error) {
	isConst := target.Const && target.Kind != cppmodel.TypeKindPointer
	if isConst {
		target = target.Clone()
		target.Const = false
	}
	if target.Kind == cppmodel.TypeKindVoid && kind != cppmodel.PtrKindPointer {
		return nil, fmt.Errorf("reference to void")
	}
	return &cppmodel.Type{
		Kind:    cppmodel.TypeKindPointer,
		PtrKind: kind,
		Const:   isConst,
		Target:  target,
	}, nil
}

func (this *TypeRegistry) parseBase(s string, templateParams []string) (*cppmodel.Type, error) {
	if s == "void" {
		return cppmodel.Void(), nil
	}
	if kind, ok := numericNames[s]; ok {
		return cppmodel.Numeric(kind), nil
	}
	if intPtrNames[s] {
		return &cppmodel.Type{Kind: cppmodel.TypeKindIntPtr}, nil
	}

	name := s
	var templateArgs []*cppmodel.Type
	if pos := strings.IndexByte(s, '<'); pos != -1 {
		if s[len(s)-1] != '>' {
			return nil, fmt.Errorf("malformed template arguments in %q", s)
		}
		name = strings.TrimSpace(s[:pos])
		for _, part := range splitTopLevel(s[pos+1 : len(s)-1]) {
			arg, err := this.ParseType(part, templateParams)
			if err != nil {
				return nil, err
			}
			templateArgs = append(templateArgs, arg)
		}
	}

	if len(templateArgs) == 0 {
		for _, tp := range templateParams {
			if name == tp {
				return &cppmodel.Type{Kind: cppmodel.TypeKindTemplateParam, Path: name}, nil
			}
		}
	}

	if !validTypeName(name) {
		return nil, fmt.Errorf("malformed type name %q", name)
	}

	if this.enums[name] {
		return cppmodel.Enum(name), nil
	}
	if info, ok := this.classes[name]; ok {
		t := cppmodel.Class(name, templateArgs...)
		t.FlagsOf = info.flagsOf
		t.FlagsBase = info.flagsBase
		return t, nil
	}
	//unknown names are opaque classes
	return cppmodel.Class(name, templateArgs...), nil
}

// splitFuncPointer recognizes "ret (*)(a, b)". Returns ok=false when s is
// not a function pointer type.
func splitFuncPointer(s string) (ret string, args []string, variadic bool, ok bool, err error) {
	pos := strings.Index(s, "(*)")
	if pos == -1 {
		return "", nil, false, false, nil
	}
	ret = strings.TrimSpace(s[:pos])
	rest := strings.TrimSpace(s[pos+3:])
	if len(rest) < 2 || rest[0] != '(' || rest[len(rest)-1] != ')' {
		return "", nil, false, true, fmt.Errorf("malformed function pointer %q", s)
	}
	inner := strings.TrimSpace(rest[1 : len(rest)-1])
	if inner == "" || inner == "void" {
		return ret, nil, false, true, nil
	}
	for _, part := range splitTopLevel(inner) {
		if part == "..." {
			variadic = true
			continue
		}
		args = append(args, part)
	}
	return ret, args, variadic, true, nil
}

// splitTopLevel splits on commas outside angle brackets and parentheses.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for n := 0; n < len(s); n++ {
		switch s[n] {
		case '<', '(':
			depth++
		case '>', ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:n]))
				start = n + 1
			}
		}
	}
	last := strings.TrimSpace(s[start:])
	if last != "" {
		parts = append(parts, last)
	}
	return parts
}

func validTypeName(name string) bool {
	if name == "" {
		return false
	}
	for _, seg := range strings.Split(name, "::") {
		if seg == "" {
			return false
		}
		for n, c := range seg {
			letter := c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
			digit := c >= '0' && c <= '9'
			if !letter && !(digit && n > 0) {
				return false
			}
		}
	}
	return true
}
