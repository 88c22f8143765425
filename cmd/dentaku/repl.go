package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/dentaku"
)

const historyFile = ".dentaku_history"

// repl reads lines from the terminal and evaluates each one against env as
// it is entered. It returns nil when the input ends or the user quits.
func repl(env *dentaku.Env, p *printer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(complete)

	hist := ""
	if home, err := os.UserHomeDir(); err == nil {
		hist = filepath.Join(home, historyFile)
	}
	if hist != "" {
		// A missing history file is normal on first use.
		if f, err := os.Open(hist); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				log.Printf("reading history: %v", err)
			}
			f.Close()
		}
		defer func() {
			if err := saveHistory(ln, hist); err != nil {
				log.Printf("saving history: %v", err)
			}
		}()
	}

	for {
		line, err := ln.Prompt("> ")
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(p.w)
				return nil
			}
			return err
		}
		switch strings.TrimSpace(line) {
		case "":
			continue
		case ":quit", ":q":
			return nil
		case ":vars":
			p.vars(env)
			continue
		}
		ln.AppendHistory(line)
		p.line(env, line)
	}
}

func saveHistory(ln *liner.State, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := ln.WriteHistory(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// complete completes a function name at the end of the line.
func complete(line string) []string {
	k := len(line)
	for k > 0 && 'a' <= line[k-1] && line[k-1] <= 'z' {
		k--
	}
	word := line[k:]
	if word == "" {
		return nil
	}
	var r []string
	for _, name := range dentaku.Funcs() {
		if strings.HasPrefix(name, word) {
			r = append(r, line[:k]+name+"(")
		}
	}
	return r
}
