package dentaku

import (
	"math"
	"strconv"
)

// builtin identifies a function that can be called from an expression. A
// builtin reads its own arguments from the cursor, starting after the optional
// open bracket following its name and ending before the optional close
// bracket.
type builtin int

const (
	fnSet builtin = iota
	fnSum
	fnSqrt
)

// funcNames is the function table, in the order the evaluator tries the
// names. No name may be a prefix of another, so the order does not change
// which one matches.
var funcNames = [...]string{
	fnSet:  "set",
	fnSum:  "sum",
	fnSqrt: "sqrt",
}

// Funcs returns the names of the built-in functions.
func Funcs() []string {
	return append([]string(nil), funcNames[:]...)
}

// call runs a builtin with the cursor at its arguments.
func (e *evaluator) call(fn builtin) (float64, error) {
	switch fn {
	case fnSet:
		return e.set()
	case fnSum:
		return e.sum()
	case fnSqrt:
		return e.sqrt()
	default:
		panic("dentaku: invalid builtin " + strconv.Itoa(int(fn)))
	}
}

// loopVar reads the variable name that starts the argument list of set and
// sum, along with the comma following it.
func (e *evaluator) loopVar(prod string) (string, error) {
	if !isLower(e.cur.peek()) {
		return "", e.fail(prod)
	}
	name := string(e.cur.read())
	if !e.cur.consume(",") {
		return "", e.fail(prod)
	}
	return name, nil
}

// set(v, expr) binds v to the value of expr and evaluates to that value.
func (e *evaluator) set() (float64, error) {
	name, err := e.loopVar("set")
	if err != nil {
		return 0, err
	}
	v, err := e.expr()
	if err != nil {
		return 0, err
	}
	e.env.vars[name] = v
	return v, nil
}

// sum(v, start, end, expr) evaluates expr once for each v from start to end
// in steps of 1 and adds the results. v stays bound to its last value
// afterward. The bounds are plain numbers, not expressions.
func (e *evaluator) sum() (float64, error) {
	name, err := e.loopVar("sum")
	if err != nil {
		return 0, err
	}
	start, err := e.number("sum")
	if err != nil {
		return 0, err
	}
	if !e.cur.consume(",") {
		return 0, e.fail("sum")
	}
	end, err := e.number("sum")
	if err != nil {
		return 0, err
	}
	if !e.cur.consume(",") {
		return 0, e.fail("sum")
	}
	body := e.cur.pos
	if end < start {
		// Nothing to evaluate, but the body still has to be passed over.
		e.cur.skipGroup()
		return 0, nil
	}
	var total float64
	for v := start; v <= end; v++ {
		if lim := e.env.limit; lim > 0 && e.iters >= lim {
			e.cur.pos = body
			return 0, &LimitError{Col: e.cur.col(), Limit: lim}
		}
		e.iters++
		e.cur.pos = body
		e.env.vars[name] = v
		r, err := e.expr()
		if err != nil {
			return 0, err
		}
		total += r
	}
	return total, nil
}

// sqrt(expr) is the square root of expr. Negative arguments give NaN.
func (e *evaluator) sqrt() (float64, error) {
	v, err := e.expr()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}
