// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/cybrota/avlindex/avl"
	"github.com/mattn/go-shellwords"
)

var (
	errUnknownOp    = errors.New("unknown operation")
	errArgCount     = errors.New("wrong number of arguments")
	errUnknownOrder = errors.New("unknown traversal order")
	errKeyType      = errors.New("unsupported key type")
)

// op is one parsed line of an operation script.
type op struct {
	line int
	name string
	args []string
}

// opArity holds the minimum and maximum argument count of every operation;
// a maximum of -1 means unbounded.
var opArity = map[string][2]int{
	"insert": {1, -1},
	"delete": {1, -1},
	"search": {1, -1},
	"min":    {0, 0},
	"max":    {0, 0},
	"succ":   {1, 1},
	"pred":   {1, 1},
	"floor":  {1, 1},
	"ceil":   {1, 1},
	"range":  {2, 2},
	"print":  {0, 1},
	"tree":   {0, 0},
	"check":  {0, 0},
	"len":    {0, 0},
	"height": {0, 0},
}

// parseScript reads one operation per line. Blank lines and lines starting
// with '#' are skipped; arguments are split with shell quoting rules.
func parseScript(r io.Reader) ([]op, error) {
	var ops []op

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		words, err := shellwords.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(words) == 0 {
			continue
		}

		name := strings.ToLower(words[0])
		args := words[1:]
		arity, ok := opArity[name]
		if !ok {
			return nil, fmt.Errorf("line %d: %w %q", lineNo, errUnknownOp, words[0])
		}
		if len(args) < arity[0] || (arity[1] >= 0 && len(args) > arity[1]) {
			return nil, fmt.Errorf("line %d: %s: %w (got %d)", lineNo, name, errArgCount, len(args))
		}

		ops = append(ops, op{line: lineNo, name: name, args: args})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return ops, nil
}

// runScript parses the script from r and applies it to a fresh tree whose
// keys are of the named type. Results are written to w.
func runScript(r io.Reader, w io.Writer, keyType string, showTree bool) error {
	ops, err := parseScript(r)
	if err != nil {
		return err
	}

	switch keyType {
	case "int":
		return execute(ops, w, strconv.Atoi, showTree)
	case "float":
		return execute(ops, w, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		}, showTree)
	case "string":
		return execute(ops, w, func(s string) (string, error) { return s, nil }, showTree)
	}
	return fmt.Errorf("%w %q", errKeyType, keyType)
}

func execute[K cmp.Ordered](ops []op, w io.Writer, parse func(string) (K, error), showTree bool) error {
	s := &session[K]{tree: avl.New[K](), parseKey: parse, out: w}
	if err := s.run(ops); err != nil {
		return err
	}
	if showTree {
		return s.tree.Fprint(w)
	}
	return nil
}

type session[K cmp.Ordered] struct {
	tree     *avl.Tree[K]
	parseKey func(string) (K, error)
	out      io.Writer
}

func (s *session[K]) run(ops []op) error {
	for _, o := range ops {
		if err := s.apply(o); err != nil {
			return fmt.Errorf("line %d: %s: %w", o.line, o.name, err)
		}
	}
	return nil
}

func (s *session[K]) keys(args []string) ([]K, error) {
	keys := make([]K, 0, len(args))
	for _, a := range args {
		k, err := s.parseKey(a)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", a, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (s *session[K]) apply(o op) error {
	switch o.name {
	case "print":
		order := "in"
		if len(o.args) == 1 {
			order = o.args[0]
		}
		name, seq, err := traversal(s.tree, order)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(s.out, "%s: %s\n", name, formatKeys(seq))
		return err
	case "tree":
		return s.tree.Fprint(s.out)
	case "check":
		if err := s.tree.Validate(); err != nil {
			return err
		}
		_, err := fmt.Fprintln(s.out, "ok")
		return err
	case "len":
		_, err := fmt.Fprintf(s.out, "len %d\n", s.tree.Len())
		return err
	case "height":
		_, err := fmt.Fprintf(s.out, "height %d\n", s.tree.Height())
		return err
	case "min":
		return s.report("min", "", s.tree.Min)
	case "max":
		return s.report("max", "", s.tree.Max)
	}

	keys, err := s.keys(o.args)
	if err != nil {
		return err
	}

	switch o.name {
	case "insert":
		for _, k := range keys {
			if s.tree.Insert(k) {
				fmt.Fprintf(s.out, "inserted %v\n", k)
			} else {
				fmt.Fprintf(s.out, "duplicate %v\n", k)
			}
		}
	case "delete":
		for _, k := range keys {
			if s.tree.Delete(k) {
				fmt.Fprintf(s.out, "deleted %v\n", k)
			} else {
				fmt.Fprintf(s.out, "missing %v\n", k)
			}
		}
	case "search":
		for _, k := range keys {
			if s.tree.Search(k) {
				fmt.Fprintf(s.out, "found %v\n", k)
			} else {
				fmt.Fprintf(s.out, "absent %v\n", k)
			}
		}
	case "succ":
		return s.report("succ", fmt.Sprint(keys[0]), func() (K, bool) { return s.tree.Successor(keys[0]) })
	case "pred":
		return s.report("pred", fmt.Sprint(keys[0]), func() (K, bool) { return s.tree.Predecessor(keys[0]) })
	case "floor":
		return s.report("floor", fmt.Sprint(keys[0]), func() (K, bool) { return s.tree.Floor(keys[0]) })
	case "ceil":
		return s.report("ceil", fmt.Sprint(keys[0]), func() (K, bool) { return s.tree.Ceiling(keys[0]) })
	case "range":
		_, err := fmt.Fprintf(s.out, "range [%v, %v): %s\n", keys[0], keys[1], formatKeys(s.tree.Range(keys[0], keys[1])))
		return err
	default:
		return errUnknownOp
	}
	return nil
}

// report prints "<label> <arg> <key>" or "<label> <arg> none".
func (s *session[K]) report(label, arg string, lookup func() (K, bool)) error {
	if arg != "" {
		label += " " + arg
	}
	k, ok := lookup()
	if !ok {
		_, err := fmt.Fprintf(s.out, "%s none\n", label)
		return err
	}
	_, err := fmt.Fprintf(s.out, "%s %v\n", label, k)
	return err
}

// traversal maps an order name to the matching tree sequence.
func traversal[K cmp.Ordered](t *avl.Tree[K], order string) (string, iter.Seq[K], error) {
	switch strings.ToLower(order) {
	case "in", "inorder":
		return "inorder", t.InOrder(), nil
	case "pre", "preorder":
		return "preorder", t.PreOrder(), nil
	case "post", "postorder":
		return "postorder", t.PostOrder(), nil
	}
	return "", nil, fmt.Errorf("%w %q", errUnknownOrder, order)
}

func formatKeys[K any](seq iter.Seq[K]) string {
	var sb strings.Builder
	first := true
	for k := range seq {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, k)
	}
	return sb.String()
}
