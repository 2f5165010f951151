package cmodel

import (
	"strings"

	"github.com/zzl/go-cppapi-gen/cppmodel"
	"github.com/zzl/go-cppapi-gen/utils"
)

// ShortTypeCaption summarizes a type without qualifiers: indirections are
// looked through, classes and enums caption as their last path segment.
func ShortTypeCaption(t *cppmodel.Type) string {
	switch t.Kind {
	case cppmodel.TypeKindVoid:
		return "void"
	case cppmodel.TypeKindNumeric:
		return t.Numeric.Caption()
	case cppmodel.TypeKindIntPtr:
		return "intptr"
	case cppmodel.TypeKindEnum:
		return pathCaption(t.Path)
	case cppmodel.TypeKindClass:
		caption := pathCaption(t.Path)
		for _, arg := range t.TemplateArgs {
			caption += "_" + ShortTypeCaption(arg)
		}
		return caption
	case cppmodel.TypeKindPointer:
		return ShortTypeCaption(t.Target)
	case cppmodel.TypeKindFunc:
		return "callback"
	case cppmodel.TypeKindTemplateParam:
		return "tparam"
	}
	return "unknown"
}

// FullTypeCaption includes const, pointer and reference qualifiers.
func FullTypeCaption(t *cppmodel.Type) string {
	switch t.Kind {
	case cppmodel.TypeKindPointer:
		caption := FullTypeCaption(t.Target)
		switch t.PtrKind {
		case cppmodel.PtrKindReference:
			caption += "_ref"
		case cppmodel.PtrKindRValueRef:
			caption += "_rref"
		default:
			caption += "_ptr"
		}
		if t.Const {
			caption = "const_" + caption
		}
		return caption
	default:
		caption := ShortTypeCaption(t)
		if t.Const {
			caption = "const_" + caption
		}
		return caption
	}
}

func pathCaption(path string) string {
	pos := strings.LastIndex(path, "::")
	if pos != -1 {
		path = path[pos+2:]
	}
	return utils.SnakeCase(path)
}
