package pqb

// Aggregate and scalar function helpers. Function names chosen here are the
// uppercase builtins; Function accepts any verbatim name for the rest.

func MaxOf(v any) Expr { return Function("MAX", exprOf(v)) }
func MinOf(v any) Expr { return Function("MIN", exprOf(v)) }
func SumOf(v any) Expr { return Function("SUM", exprOf(v)) }
func AvgOf(v any) Expr { return Function("AVG", exprOf(v)) }

func CountOf(v any) Expr { return Function("COUNT", exprOf(v)) }

// CountAll is COUNT(*).
func CountAll() Expr { return Function("COUNT", Asterisk()) }

func Coalesce(args ...Expr) Expr { return Function("COALESCE", args...) }

func Lower(v any) Expr { return Function("LOWER", exprOf(v)) }
func Upper(v any) Expr { return Function("UPPER", exprOf(v)) }
