package pqb

// BinaryOp is a binary SQL operator.
type BinaryOp int

const (
	// Logical
	OpAnd BinaryOp = iota
	OpOr

	// Comparison
	OpEq
	OpNe
	OpLt
	OpLte
	OpGt
	OpGte
	OpLike
	OpNotLike
	OpIs
	OpIsNot
	OpIn
	OpNotIn
	OpBetween
	OpNotBetween

	// Arithmetic and shift
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpShiftLeft
	OpShiftRight

	// Range and array
	OpContains
	OpContainedBy
	OpOverlaps
	OpStrictlyLeftOf
	OpStrictlyRightOf
	OpDoesNotExtendRightOf
	OpDoesNotExtendLeftOf
	OpAdjacentTo
)

var binaryOpText = map[BinaryOp]string{
	OpAnd:                  "AND",
	OpOr:                   "OR",
	OpEq:                   "=",
	OpNe:                   "<>",
	OpLt:                   "<",
	OpLte:                  "<=",
	OpGt:                   ">",
	OpGte:                  ">=",
	OpLike:                 "LIKE",
	OpNotLike:              "NOT LIKE",
	OpIs:                   "IS",
	OpIsNot:                "IS NOT",
	OpIn:                   "IN",
	OpNotIn:                "NOT IN",
	OpBetween:              "BETWEEN",
	OpNotBetween:           "NOT BETWEEN",
	OpAdd:                  "+",
	OpSub:                  "-",
	OpMul:                  "*",
	OpDiv:                  "/",
	OpMod:                  "%",
	OpShiftLeft:            "<<",
	OpShiftRight:           ">>",
	OpContains:             "@>",
	OpContainedBy:          "<@",
	OpOverlaps:             "&&",
	OpStrictlyLeftOf:       "<<",
	OpStrictlyRightOf:      ">>",
	OpDoesNotExtendRightOf: "&<",
	OpDoesNotExtendLeftOf:  "&>",
	OpAdjacentTo:           "-|-",
}

func (op BinaryOp) text() string { return binaryOpText[op] }

// precClass orders operators for parenthesization. Higher binds tighter.
type precClass int

const (
	precLogical precClass = iota + 1
	precComparison
	precArithmetic
)

func (op BinaryOp) class() precClass {
	switch op {
	case OpAnd, OpOr:
		return precLogical
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpShiftLeft, OpShiftRight:
		return precArithmetic
	default:
		return precComparison
	}
}

// leftAssociative reports the operators whose repeated left-nested chains
// render without parentheses.
func (op BinaryOp) leftAssociative() bool {
	switch op {
	case OpAnd, OpOr, OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// UnaryOp is a prefix SQL operator.
type UnaryOp int

const (
	OpNot UnaryOp = iota
)

func (op UnaryOp) text() string { return "NOT" }
