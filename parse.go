package dentaku

import (
	"math"
	"strconv"
	"strings"
)

// expr   = term { ('+' | '-') term }
// term   = factor { ('*' | '/' | '^' | ) factor }
// factor = '(' expr ')' | funcname ['('] args [')'] | var | num
// var    = 'a' ... 'z'
// num    = { '0' ... '9' | '.' }
//
// Parsing and evaluation happen in the same pass. There is no syntax tree;
// each rule returns the value of what it consumed.

// evaluator evaluates one line against an environment.
type evaluator struct {
	cur cursor
	env *Env
	// iters is the number of sum iterations run so far on this line.
	iters int
	// depth is the number of brackets and function calls enclosing the
	// cursor.
	depth int
}

// maxDepth is the deepest nesting of brackets and function calls a line may
// contain.
const maxDepth = 10000

func (e *evaluator) fail(prod string) error {
	return &SyntaxError{Col: e.cur.col(), Prod: prod}
}

// enter descends one level of nesting at column col.
func (e *evaluator) enter(col int) error {
	if e.depth >= maxDepth {
		return &DepthError{Col: col, Limit: maxDepth}
	}
	e.depth++
	return nil
}

// expr evaluates a sum or difference of terms. It stops at the end of the
// line or at a close bracket, which it leaves for the caller.
func (e *evaluator) expr() (float64, error) {
	v, err := e.term()
	if err != nil {
		return 0, err
	}
	for !e.cur.atEnd() && e.cur.peek() != ')' {
		switch {
		case e.cur.consume("+"):
			r, err := e.term()
			if err != nil {
				return 0, err
			}
			v += r
		case e.cur.consume("-"):
			r, err := e.term()
			if err != nil {
				return 0, err
			}
			v -= r
		default:
			return 0, e.fail("expr")
		}
	}
	return v, nil
}

// term evaluates a product of factors. Exponentiation binds no tighter than
// multiplication, so "2^3^2" is "(2^3)^2". Two factors with nothing between
// them are multiplied.
func (e *evaluator) term() (float64, error) {
	v, err := e.factor()
	if err != nil {
		return 0, err
	}
	for !e.cur.atEnd() {
		var op byte
		switch e.cur.peek() {
		case '+', '-', ')':
			return v, nil
		case '*', '/', '^':
			op = e.cur.read()
		}
		r, err := e.factor()
		if err != nil {
			return 0, err
		}
		switch op {
		case '/':
			v /= r
		case '^':
			v = math.Pow(v, r)
		default:
			v *= r
		}
	}
	return v, nil
}

// factor evaluates a bracketed expression, a function call, a variable, or a
// number.
func (e *evaluator) factor() (float64, error) {
	if e.cur.atEnd() {
		return 0, e.fail("factor")
	}
	col := e.cur.col()
	if e.cur.consume("(") {
		if err := e.enter(col); err != nil {
			return 0, err
		}
		v, err := e.expr()
		e.depth--
		if err != nil {
			return 0, err
		}
		if !e.cur.consume(")") {
			return 0, e.fail("factor")
		}
		return v, nil
	}
	for fn, name := range funcNames {
		if !e.cur.consume(name) {
			continue
		}
		if err := e.enter(col); err != nil {
			return 0, err
		}
		// Brackets around arguments are optional: "sqrt4" is "sqrt(4)".
		e.cur.consume("(")
		v, err := e.call(builtin(fn))
		e.depth--
		if err != nil {
			return 0, err
		}
		e.cur.consume(")")
		return v, nil
	}
	if isLower(e.cur.peek()) {
		return e.variable()
	}
	return e.number("factor")
}

// number evaluates a numeric literal. The literal is the longest run of
// digits and dots not interrupted by whitespace, read up to but not including
// a second dot; the whole run is consumed regardless. prod names the rule to
// blame when there is no literal at the cursor.
func (e *evaluator) number(prod string) (float64, error) {
	col := e.cur.col()
	start := e.cur.pos
	for !e.cur.atEnd() && isNumByte(e.cur.peek()) {
		e.cur.pos++
		if e.cur.gap() {
			break
		}
	}
	s := e.cur.line[start:e.cur.pos]
	if k := strings.IndexByte(s, '.'); k >= 0 {
		if j := strings.IndexByte(s[k+1:], '.'); j >= 0 {
			s = s[:k+1+j]
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// The run only holds digits and at most one dot, so the only failures
		// are "" and ".". Overflow is not an error; ParseFloat gives ±Inf.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v, nil
		}
		return 0, &SyntaxError{Col: col, Prod: prod}
	}
	return v, nil
}

// variable evaluates a reference to a one-letter variable.
func (e *evaluator) variable() (float64, error) {
	col := e.cur.col()
	name := string(e.cur.read())
	v, ok := e.env.vars[name]
	if !ok {
		return 0, &NameError{Col: col, Name: name}
	}
	return v, nil
}
