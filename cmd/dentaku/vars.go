package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/dentaku"
)

// loadVarsFile binds the variables defined in a YAML file.
func loadVarsFile(path string, env *dentaku.Env) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("vars: %w", err)
	}
	defer f.Close()
	if err := loadVars(f, env); err != nil {
		return fmt.Errorf("vars: %s: %w", path, err)
	}
	return nil
}

// loadVars reads a YAML mapping from variable names to numbers or
// expressions, e.g.
//
//	r: 2
//	p: 3.14159
//	a: p r r
//
// Values are evaluated in order, so each can use the variables before it.
func loadVars(r io.Reader, env *dentaku.Env) error {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file.
			return nil
		}
		return err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return fmt.Errorf("line %d: expected a single document", doc.Line)
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: variables must be a mapping", m.Line)
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: value of %s must be a number or expression", v.Line, k.Value)
		}
		if err := define(env, k.Value, v.Value); err != nil {
			return fmt.Errorf("line %d: %s: %w", k.Line, k.Value, err)
		}
	}
	return nil
}
