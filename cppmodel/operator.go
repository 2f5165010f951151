package cppmodel

type OperatorKind int

const (
	OpAssign OperatorKind = iota
	OpAdd
	OpSub
	OpUnaryPlus
	OpUnaryMinus
	OpMul
	OpDiv
	OpRem
	OpIncrement
	OpDecrement
	OpEq
	OpNeq
	OpGt
	OpLt
	OpGe
	OpLe
	OpNot
	OpAnd
	OpOr
	OpBitNot
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpRemAssign
	OpBitAndAssign
	OpBitOrAssign
	OpBitXorAssign
	OpShlAssign
	OpShrAssign
	OpIndex
	OpCall
	OpDeref
	OpArrow
	OpComma
	OpConversion
)

// ArityUnconstrained marks operators with no fixed operand count.
const ArityUnconstrained = -1

// OperatorInfo describes how one operator kind maps to a boundary name
// fragment. FixedArity counts every operand, including the implicit this
// of a non-static member operator. Conversion has no fixed fragment; its
// fragment derives from the conversion target type.
type OperatorInfo struct {
	Kind           OperatorKind
	Token          string
	Fragment       string
	FixedArity     int
	AllowsVariadic bool
}

// operatorTable is ordered data, not control flow; extending or
// reordering it must not change any lookup result.
var operatorTable = []OperatorInfo{
	{OpAssign, "=", "set", 2, false},
	{OpAdd, "+", "add", 2, false},
	{OpSub, "-", "sub", 2, false},
	{OpUnaryPlus, "+", "unary_plus", 1, false},
	{OpUnaryMinus, "-", "neg", 1, false},
	{OpMul, "*", "mul", 2, false},
	{OpDiv, "/", "div", 2, false},
	{OpRem, "%", "rem", 2, false},
	{OpIncrement, "++", "inc", 1, false},
	{OpDecrement, "--", "dec", 1, false},
	{OpEq, "==", "eq", 2, false},
	{OpNeq, "!=", "neq", 2, false},
	{OpGt, ">", "gt", 2, false},
	{OpLt, "<", "lt", 2, false},
	{OpGe, ">=", "ge", 2, false},
	{OpLe, "<=", "le", 2, false},
	{OpNot, "!", "not", 1, false},
	{OpAnd, "&&", "and", 2, false},
	{OpOr, "||", "or", 2, false},
	{OpBitNot, "~", "bit_not", 1, false},
	{OpBitAnd, "&", "bit_and", 2, false},
	{OpBitOr, "|", "bit_or", 2, false},
	{OpBitXor, "^", "bit_xor", 2, false},
	{OpShl, "<<", "shl", 2, false},
	{OpShr, ">>", "shr", 2, false},
	{OpAddAssign, "+=", "add_assign", 2, false},
	{OpSubAssign, "-=", "sub_assign", 2, false},
	{OpMulAssign, "*=", "mul_assign", 2, false},
	{OpDivAssign, "/=", "div_assign", 2, false},
	{OpRemAssign, "%=", "rem_assign", 2, false},
	{OpBitAndAssign, "&=", "bit_and_assign", 2, false},
	{OpBitOrAssign, "|=", "bit_or_assign", 2, false},
	{OpBitXorAssign, "^=", "bit_xor_assign", 2, false},
	{OpShlAssign, "<<=", "shl_assign", 2, false},
	{OpShrAssign, ">>=", "shr_assign", 2, false},
	{OpIndex, "[]", "index", 2, false},
	{OpCall, "()", "call", ArityUnconstrained, true},
	{OpDeref, "*", "deref", 1, false},
	{OpArrow, "->", "arrow", 1, false},
	{OpComma, ",", "comma", 2, false},
	{OpConversion, "", "", 1, false},
}

var operatorMap map[OperatorKind]*OperatorInfo

func init() {
	operatorMap = make(map[OperatorKind]*OperatorInfo)
	for n := range operatorTable {
		info := &operatorTable[n]
		if _, ok := operatorMap[info.Kind]; !ok {
			operatorMap[info.Kind] = info
		}
	}
}

// LookupOperator returns the classification entry for kind, or nil for
// an unknown kind.
func LookupOperator(kind OperatorKind) *OperatorInfo {
	return operatorMap[kind]
}

// operatorTokenMap resolves spelled operator names used in declaration
// files. Unary and binary uses of the same token are distinguished by
// the spelled names, not the tokens.
var operatorNameMap = map[string]OperatorKind{
	"assign":         OpAssign,
	"add":            OpAdd,
	"sub":            OpSub,
	"unary_plus":     OpUnaryPlus,
	"neg":            OpUnaryMinus,
	"mul":            OpMul,
	"div":            OpDiv,
	"rem":            OpRem,
	"inc":            OpIncrement,
	"dec":            OpDecrement,
	"eq":             OpEq,
	"neq":            OpNeq,
	"gt":             OpGt,
	"lt":             OpLt,
	"ge":             OpGe,
	"le":             OpLe,
	"not":            OpNot,
	"and":            OpAnd,
	"or":             OpOr,
	"bit_not":        OpBitNot,
	"bit_and":        OpBitAnd,
	"bit_or":         OpBitOr,
	"bit_xor":        OpBitXor,
	"shl":            OpShl,
	"shr":            OpShr,
	"add_assign":     OpAddAssign,
	"sub_assign":     OpSubAssign,
	"mul_assign":     OpMulAssign,
	"div_assign":     OpDivAssign,
	"rem_assign":     OpRemAssign,
	"bit_and_assign": OpBitAndAssign,
	"bit_or_assign":  OpBitOrAssign,
	"bit_xor_assign": OpBitXorAssign,
	"shl_assign":     OpShlAssign,
	"shr_assign":     OpShrAssign,
	"index":          OpIndex,
	"call":           OpCall,
	"deref":          OpDeref,
	"arrow":          OpArrow,
	"comma":          OpComma,
	"conversion":     OpConversion,
}

// LookupOperatorName resolves a spelled operator name from a declaration
// file to its kind.
func LookupOperatorName(name string) (OperatorKind, bool) {
	kind, ok := operatorNameMap[name]
	return kind, ok
}
