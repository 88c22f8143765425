package dentaku

import (
	"fmt"
	"strings"
)

// Env is the variable environment of an evaluation session. Every line
// evaluated with the same Env sees the variables bound by earlier lines. It is
// not safe to use an Env concurrently.
type Env struct {
	vars  map[string]float64
	limit int
}

// EnvOption is an option used when creating an environment.
type EnvOption interface {
	envOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt  map[string]float64
	limitopt int
)

func (varopt) envOption()   {}
func (varsopt) envOption()  {}
func (limitopt) envOption() {}

// SetVar sets the value of a variable in the environment. Panics if name is
// not a single lowercase ASCII letter.
func SetVar(name string, val float64) EnvOption {
	checkName(name)
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the environment.
// Panics if any name is not a single lowercase ASCII letter.
func SetVars(vars map[string]float64) EnvOption {
	for name := range vars {
		checkName(name)
	}
	return varsopt(vars)
}

// IterLimit limits the total number of sum iterations a single line may run.
// A line that would exceed the limit fails with a LimitError. Zero or less
// means no limit, which is the default.
func IterLimit(n int) EnvOption {
	return limitopt(n)
}

// ValidName reports whether name can be used as a variable name.
func ValidName(name string) bool {
	return len(name) == 1 && isLower(name[0])
}

func checkName(name string) {
	if !ValidName(name) {
		panic(fmt.Sprintf("dentaku: invalid variable name %q", name))
	}
}

// NewEnv creates a new environment with no variables other than those set by
// options.
func NewEnv(opts ...EnvOption) *Env {
	env := Env{vars: make(map[string]float64)}
	return env.Clone(opts...)
}

// Clone creates a copy of an environment and applies options to it. Changes to
// the copy do not affect the original.
func (env *Env) Clone(opts ...EnvOption) *Env {
	n := Env{
		vars:  make(map[string]float64, len(env.vars)),
		limit: env.limit,
	}
	for name, val := range env.vars {
		n.vars[name] = val
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.vars[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.vars[k] = v
			}
		case limitopt:
			n.limit = int(opt)
		default:
			panic("dentaku: unknown option type")
		}
	}
	return &n
}

// Set sets the value of a variable. Returns env for chaining. Panics if name
// is not a single lowercase ASCII letter.
func (env *Env) Set(name string, value float64) *Env {
	checkName(name)
	env.vars[name] = value
	return env
}

// Lookup returns the value of a variable and whether it is bound.
func (env *Env) Lookup(name string) (float64, bool) {
	v, ok := env.vars[name]
	return v, ok
}

// Names returns the names of all bound variables in sorted order.
func (env *Env) Names() []string {
	names := make([]string, 0, len(env.vars))
	for k := range env.vars {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// Eval evaluates one line. Whitespace anywhere in the line is ignored.
// Variables bound by set and sum stay bound even if the line fails after
// binding them.
//
// Errors caused by the input implement InputError. Any other error indicates
// a bug in the evaluator.
func (env *Env) Eval(line string) (r float64, err error) {
	e := evaluator{env: env}
	e.cur.reset(line)
	defer func() {
		x := recover()
		if x == nil {
			return
		}
		r, err = 0, fmt.Errorf("dentaku: internal error at column %d: %v", e.cur.col(), x)
	}()
	return e.expr()
}

// fallbackText is the result text of a line that failed for a reason other
// than its input.
const fallbackText = "error!!"

// Result formats the outcome of evaluating a line. On success it is the
// number as formatted by FormatNumber. If err is an InputError, it is the
// error message; otherwise it is a generic error text.
func Result(r float64, err error) string {
	if err == nil {
		return FormatNumber(r)
	}
	if _, ok := err.(InputError); ok {
		return err.Error()
	}
	return fallbackText
}

// Lines splits a program into its lines. Empty lines are kept, so the result
// always has one more element than src has newlines.
func Lines(src string) []string {
	return strings.Split(src, "\n")
}

// Run evaluates each line of src in order and returns one result per line,
// joined by newlines. A failing line does not stop later lines.
func (env *Env) Run(src string) string {
	lines := Lines(src)
	for i, line := range lines {
		lines[i] = Result(env.Eval(line))
	}
	return strings.Join(lines, "\n")
}

// Evaluate runs a program in a new environment created with opts.
func Evaluate(src string, opts ...EnvOption) string {
	return NewEnv(opts...).Run(src)
}

// EvalString is a shortcut to evaluate a single line in a new environment.
func EvalString(line string, opts ...EnvOption) (float64, error) {
	return NewEnv(opts...).Eval(line)
}
