package dentaku

import (
	"math"
	"strings"
	"testing"
)

// evalLine evaluates src with a new evaluator over env and reports where the
// cursor stopped.
func evalLine(env *Env, src string) (float64, int, error) {
	e := evaluator{env: env}
	e.cur.reset(src)
	r, err := e.expr()
	return r, e.cur.pos, err
}

func TestGrammar(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
		end  int
	}{
		{"num", "1", 1, 1},
		{"frac", "2.5", 2.5, 3},
		{"lead-dot", ".5", 0.5, 2},
		{"trail-dot", "5.", 5, 2},
		{"two-dots", "1.2.3", 1.2, 5},
		{"add", "4+5+6", 15, 5},
		{"sub", "4-5-6", -7, 5},
		{"mul", "4*5*6", 120, 5},
		{"div", "4/5/8", 0.1, 5},
		{"pow", "2^3^2", 64, 5},
		{"pow-frac", "4^0.5", 2, 5},
		{"pow-neg", "2^(0-1)", 0.5, 7},
		{"prec", "1+2*3", 7, 5},
		{"prec-pow", "1+2^3", 9, 5},
		{"mul-pow", "2*3^2", 36, 5},
		{"paren", "(1+2)*3", 9, 7},
		{"nested", "((2))", 2, 5},
		{"adjacent", "2 3", 6, 2},
		{"adjacent-paren", "2(3+4)", 14, 6},
		{"paren-adjacent", "(3+4)2", 14, 6},
		{"adjacent-var", "2x", 6, 2},
		{"adjacent-vars", "xy", 12, 2},
		{"adjacent-func", "2sqrt(16)", 8, 9},
		{"sub-paren", "10-(2-3)", 11, 8},
		{"stray-close", "1)2", 1, 1},
		{"spaces", " 1 +\t2 ", 3, 3},
		{"split-number", "1 0", 0, 2},
		{"split-frac", "1 .5", 0.5, 3},
		{"split-keyword", "sq rt(4)", 2, 7},
	}
	env := NewEnv(SetVar("x", 3), SetVar("y", 4))
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, end, err := evalLine(env, c.src)
			if err != nil {
				t.Fatalf("%q failed: %v", c.src, err)
			}
			if math.Abs(r-c.want) > 1e-15 {
				t.Errorf("%q: want %g, got %g", c.src, c.want, r)
			}
			if end != c.end {
				t.Errorf("%q stopped at %d, want %d", c.src, end, c.end)
			}
		})
	}
}

func TestGrammarAnomalies(t *testing.T) {
	cases := []struct {
		name string
		src  string
		test func(float64) bool
	}{
		{"div-zero", "1/0", func(f float64) bool { return math.IsInf(f, 1) }},
		{"div-neg-zero", "(0-1)/0", func(f float64) bool { return math.IsInf(f, -1) }},
		{"zero-zero", "0/0", math.IsNaN},
		{"pow-neg-frac", "(0-8)^0.5", math.IsNaN},
		{"overflow", "10^400", func(f float64) bool { return math.IsInf(f, 1) }},
		{"big-literal", "1" + zeros(400), func(f float64) bool { return math.IsInf(f, 1) }},
	}
	env := NewEnv()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, _, err := evalLine(env, c.src)
			if err != nil {
				t.Fatalf("%q gave error %v", c.src, err)
			}
			if !c.test(r) {
				t.Errorf("%q gave wrong result %g", c.src, r)
			}
		})
	}
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

func TestGrammarErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		prod string
		col  int
	}{
		{"empty", "", "factor", 1},
		{"blank", "  \t", "factor", 1},
		{"open", "(1+2", "factor", 5},
		{"open-empty", "(", "factor", 2},
		{"trailing-op", "1+", "factor", 3},
		{"trailing-mul", "2*", "factor", 3},
		{"lead-op", "*2", "factor", 1},
		{"lead-minus", "-1", "factor", 1},
		{"double-op", "1+*2", "factor", 3},
		{"lone-dot", ".", "factor", 1},
		{"symbol", "#", "factor", 1},
		{"upper", "X", "factor", 1},
		{"comma", "1,2", "factor", 2},
		{"empty-paren", "()", "factor", 2},
		{"extra-arg", "sqrt(4,2)", "factor", 7},
		{"sum-expr-bound", "sum(x,1+1,3,x)", "sum", 8},
		{"sum-var-bound", "sum(x,a,3,x)", "sum", 7},
		{"sum-neg-bound", "sum(x,-1,3,x)", "sum", 7},
		{"sum-no-comma", "sum(x1,3,x)", "sum", 6},
		{"sum-no-var", "sum(1,1,3,x)", "sum", 5},
		{"sum-short", "sum(x,1,3)", "sum", 10},
		{"set-no-comma", "set(a1)", "set", 6},
		{"set-no-var", "set(1,2)", "set", 5},
		{"set-upper", "set(A,2)", "set", 5},
		{"set-end", "set", "set", 4},
	}
	env := NewEnv()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, _, err := evalLine(env, c.src)
			if err == nil {
				t.Fatalf("%q gave no error, result %g", c.src, r)
			}
			se, ok := err.(*SyntaxError)
			if !ok {
				t.Fatalf("%q: error was %#v, not SyntaxError", c.src, err)
			}
			if se.Prod != c.prod {
				t.Errorf("%q: want failure in %s, got %s", c.src, c.prod, se.Prod)
			}
			if se.Pos() != c.col {
				t.Errorf("%q: want column %d, got %d", c.src, c.col, se.Pos())
			}
			if want := "invalid syntax: " + c.prod; err.Error() != want {
				t.Errorf("%q: want message %q, got %q", c.src, want, err.Error())
			}
		})
	}
}

func TestUndefinedVariable(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
	}{
		{"z", "z", 1},
		{"add-lhs", "z+1", 1},
		{"add-rhs", "1+z", 3},
		{"mul-rhs", "2*z", 3},
		{"adjacent", "2z", 2},
		{"paren", "(1+(z))", 5},
		{"sqrt", "sqrt(z)", 6},
		{"set", "set(a,z)", 7},
		{"sum", "sum(x,1,2,z)", 11},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := evalLine(NewEnv(), c.src)
			if err == nil {
				t.Fatalf("%q gave no error", c.src)
			}
			ne, ok := err.(*NameError)
			if !ok {
				t.Fatalf("%q: error was %#v, not NameError", c.src, err)
			}
			if ne.Name != "z" {
				t.Errorf("%q: want name z, got %q", c.src, ne.Name)
			}
			if ne.Pos() != c.col {
				t.Errorf("%q: want column %d, got %d", c.src, c.col, ne.Pos())
			}
			if msg := err.Error(); msg != "undefined variable: z" {
				t.Errorf("%q: wrong message %q", c.src, msg)
			}
		})
	}
}

func TestNestingDepth(t *testing.T) {
	deep := func(open, close string, n int) string {
		return strings.Repeat(open, n) + "1" + strings.Repeat(close, n)
	}
	ok := []struct {
		name string
		src  string
		want float64
	}{
		{"brackets", deep("(", ")", maxDepth), 1},
		{"calls", deep("sqrt(", ")", maxDepth), 1},
		{"mixed", deep("(sqrt(", "))", maxDepth/2), 1},
		{"siblings", strings.Repeat("(1)+", 2*maxDepth) + "1", 2*maxDepth + 1},
		{"sum-body", "sum(x,1,20000,(((x))))/x", 10000.5},
	}
	for _, c := range ok {
		t.Run(c.name, func(t *testing.T) {
			r, _, err := evalLine(NewEnv(), c.src)
			if err != nil {
				t.Fatalf("failed: %v", err)
			}
			if r != c.want {
				t.Errorf("want %g, got %g", c.want, r)
			}
		})
	}
	bad := []struct {
		name string
		src  string
		col  int
	}{
		{"brackets", deep("(", ")", maxDepth+1), maxDepth + 1},
		{"unclosed", strings.Repeat("(", 4*maxDepth), maxDepth + 1},
		{"calls", deep("sqrt(", ")", maxDepth+1), 5*maxDepth + 1},
		{"bare-calls", strings.Repeat("sqrt", maxDepth+1) + "1", 4*maxDepth + 1},
	}
	for _, c := range bad {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := evalLine(NewEnv(), c.src)
			de, ok := err.(*DepthError)
			if !ok {
				t.Fatalf("error was %#v, not DepthError", err)
			}
			if de.Pos() != c.col {
				t.Errorf("want column %d, got %d", c.col, de.Pos())
			}
			if de.Limit != maxDepth {
				t.Errorf("want limit %d, got %d", maxDepth, de.Limit)
			}
		})
	}
}
