package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zephyrtronium/dentaku"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, varsname string
		with                   [][2]string
		echo, pos, inter       bool
		maxiter                int
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file, read before any args (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "", "result formatting string (default shortest decimal)")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.StringVar(&varsname, "vars", "", "YAML file of variable definitions")
	flag.IntVar(&maxiter, "max-iter", 0, "maximum sum iterations per line, 0 for no limit")
	flag.BoolVar(&echo, "echo", false, "print each line before its result")
	flag.BoolVar(&pos, "pos", false, "prefix error messages with their column")
	flag.BoolVar(&inter, "i", false, "read lines interactively")
	flag.Parse()
	if maxiter < 0 {
		log.Fatalf("iteration limit (%d) must not be negative", maxiter)
	}

	env := dentaku.NewEnv(dentaku.IterLimit(maxiter))
	if varsname != "" {
		if err := loadVarsFile(varsname, env); err != nil {
			log.Fatal(err)
		}
	}
	for _, d := range with {
		if err := define(env, d[0], d[1]); err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
	}

	if inter && inname == "-" {
		log.Fatal("cannot read the program from stdin with -i")
	}
	interactive := inter || inname == "" && flag.NArg() == 0 && term.IsTerminal(int(os.Stdin.Fd()))
	lines, err := inputLines(inname, flag.Args(), interactive)
	if err != nil {
		log.Fatal(err)
	}

	p := &printer{w: os.Stdout, verb: verb, echo: echo, pos: pos}
	p.run(env, lines)
	if interactive {
		if err := repl(env, p); err != nil {
			log.Fatal(err)
		}
	}
}

// inputLines collects the program: the lines of the input file if one is
// named, followed by each argument as a line. With neither, the program is
// read from stdin unless lines are to be read interactively.
func inputLines(inname string, args []string, interactive bool) ([]string, error) {
	var lines []string
	if inname != "" || len(args) == 0 && !interactive {
		src, err := readInput(inname)
		if err != nil {
			return nil, err
		}
		lines = dentaku.Lines(src)
	}
	return append(lines, args...), nil
}

// define evaluates src and binds the result to name. The evaluation sees the
// variables already in env, but any variables it binds itself are discarded.
func define(env *dentaku.Env, name, src string) error {
	if !dentaku.ValidName(name) {
		return fmt.Errorf("invalid variable name %q", name)
	}
	r, err := env.Clone().Eval(src)
	if err != nil {
		return err
	}
	env.Set(name, r)
	return nil
}

// readInput reads a whole program from a file, or stdin if the name is empty
// or "-". A single trailing newline does not start another line.
func readInput(inname string) (string, error) {
	var f *os.File
	switch inname {
	case "", "-":
		f = os.Stdin
	default:
		in, err := os.Open(inname)
		if err != nil {
			return "", err
		}
		defer in.Close()
		f = in
	}
	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", f.Name(), err)
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

// printer writes line results.
type printer struct {
	w    io.Writer
	verb string
	echo bool
	pos  bool
}

// run evaluates lines in order against env and prints a result for each.
func (p *printer) run(env *dentaku.Env, lines []string) {
	for _, line := range lines {
		p.line(env, line)
	}
}

// line evaluates one line and prints its result.
func (p *printer) line(env *dentaku.Env, line string) {
	if p.echo {
		fmt.Fprintf(p.w, "%s : ", strings.TrimSpace(line))
	}
	fmt.Fprintln(p.w, p.format(env.Eval(line)))
}

func (p *printer) format(r float64, err error) string {
	switch {
	case err == nil && p.verb != "":
		return fmt.Sprintf(p.verb, r)
	case err != nil && p.pos:
		if _, ok := err.(dentaku.InputError); ok {
			return dentaku.Describe(err)
		}
	}
	return dentaku.Result(r, err)
}

// vars prints every bound variable.
func (p *printer) vars(env *dentaku.Env) {
	for _, name := range env.Names() {
		v, _ := env.Lookup(name)
		fmt.Fprintf(p.w, "%s = %s\n", name, p.format(v, nil))
	}
}
