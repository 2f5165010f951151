package cppmodel

type TypeKind int

const (
	TypeKindVoid          TypeKind = 0
	TypeKindNumeric       TypeKind = 1
	TypeKindIntPtr        TypeKind = 2
	TypeKindEnum          TypeKind = 3
	TypeKindClass         TypeKind = 4
	TypeKindPointer       TypeKind = 5
	TypeKindTemplateParam TypeKind = 6
	TypeKindFunc          TypeKind = 7
)

type PtrKind int

const (
	PtrKindPointer   PtrKind = 0
	PtrKindReference PtrKind = 1
	PtrKindRValueRef PtrKind = 2
)

type NumericKind int

const (
	NumBool NumericKind = iota
	NumChar
	NumUChar
	NumShort
	NumUShort
	NumInt
	NumUInt
	NumLong
	NumULong
	NumLongLong
	NumULongLong
	NumInt8
	NumUInt8
	NumInt16
	NumUInt16
	NumInt32
	NumUInt32
	NumInt64
	NumUInt64
	NumFloat
	NumDouble
)

// Type models one C++ type. Kind selects which fields are meaningful:
// Numeric for TypeKindNumeric; Path (and TemplateArgs, FlagsOf, FlagsBase)
// for TypeKindEnum/TypeKindClass; PtrKind/Const/Target for TypeKindPointer;
// Return/Args/Variadic for TypeKindFunc.
type Type struct {
	Kind    TypeKind
	Numeric NumericKind

	Path         string //:: separated
	TemplateArgs []*Type

	//flags wrapper class (bitmask over an enum)
	FlagsOf   string
	FlagsBase NumericKind

	PtrKind PtrKind
	Const   bool
	Target  *Type

	Return   *Type
	Args     []*Type
	Variadic bool
}

func (this *Type) Clone() *Type {
	t := *this
	return &t
}

func (this *Type) IsFlagsWrapper() bool {
	return this.Kind == TypeKindClass && this.FlagsOf != ""
}

func Void() *Type {
	return &Type{Kind: TypeKindVoid}
}

func Numeric(kind NumericKind) *Type {
	return &Type{Kind: TypeKindNumeric, Numeric: kind}
}

func Enum(path string) *Type {
	return &Type{Kind: TypeKindEnum, Path: path}
}

func Class(path string, templateArgs ...*Type) *Type {
	return &Type{Kind: TypeKindClass, Path: path, TemplateArgs: templateArgs}
}

func Pointer(target *Type) *Type {
	return &Type{Kind: TypeKindPointer, PtrKind: PtrKindPointer, Target: target}
}

func ConstPointer(target *Type) *Type {
	return &Type{Kind: TypeKindPointer, PtrKind: PtrKindPointer, Const: true, Target: target}
}

func Reference(target *Type) *Type {
	return &Type{Kind: TypeKindPointer, PtrKind: PtrKindReference, Target: target}
}

func ConstReference(target *Type) *Type {
	return &Type{Kind: TypeKindPointer, PtrKind: PtrKindReference, Const: true, Target: target}
}

var numericCNames = map[NumericKind]string{
	NumBool:      "bool",
	NumChar:      "char",
	NumUChar:     "unsigned char",
	NumShort:     "short",
	NumUShort:    "unsigned short",
	NumInt:       "int",
	NumUInt:      "unsigned int",
	NumLong:      "long",
	NumULong:     "unsigned long",
	NumLongLong:  "long long",
	NumULongLong: "unsigned long long",
	NumInt8:      "int8_t",
	NumUInt8:     "uint8_t",
	NumInt16:     "int16_t",
	NumUInt16:    "uint16_t",
	NumInt32:     "int32_t",
	NumUInt32:    "uint32_t",
	NumInt64:     "int64_t",
	NumUInt64:    "uint64_t",
	NumFloat:     "float",
	NumDouble:    "double",
}

func (k NumericKind) CName() string {
	return numericCNames[k]
}

var numericCaptions = map[NumericKind]string{
	NumBool:      "bool",
	NumChar:      "char",
	NumUChar:     "uchar",
	NumShort:     "short",
	NumUShort:    "ushort",
	NumInt:       "int",
	NumUInt:      "uint",
	NumLong:      "long",
	NumULong:     "ulong",
	NumLongLong:  "longlong",
	NumULongLong: "ulonglong",
	NumInt8:      "i8",
	NumUInt8:     "u8",
	NumInt16:     "i16",
	NumUInt16:    "u16",
	NumInt32:     "i32",
	NumUInt32:    "u32",
	NumInt64:     "i64",
	NumUInt64:    "u64",
	NumFloat:     "float",
	NumDouble:    "double",
}

func (k NumericKind) Caption() string {
	return numericCaptions[k]
}
