// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/boxmat/algebra"
	"github.com/katalvlaran/boxmat/matrix"
)

var (
	errUnknownOp      = errors.New("unknown op")
	errUnknownElement = errors.New("unknown element type")
	errEmptyVerb      = errors.New("--verb must not be empty")
)

// Element kinds accepted in job files.
const (
	elementFloat   = "float"
	elementInt     = "int"
	elementBool    = "bool"
	elementMinPlus = "minplus"
)

// Operations accepted in job files.
const (
	opAdd      = "add"
	opMul      = "mul"
	opHadamard = "hadamard"
)

type evalCmd struct {
	File    string `arg:"" type:"existingfile" help:"YAML job file describing the operation and both operands"`
	Workers int    `help:"worker goroutines for mul; 0 multiplies sequentially, negative uses every CPU" default:"0" env:"BOXMAT_WORKERS"`
	Verb    string `help:"fmt verb used to render each element" default:"%v"`
}

// Run loads the job file, evaluates it and prints the rendered result.
func (c *evalCmd) Run(g *globals) error {
	if c.Verb == "" {
		return errEmptyVerb
	}

	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	j, err := decodeJob(f)
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}

	out, err := j.run(c.Workers, matrix.WithVerb(c.Verb))
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}

	_, err = fmt.Fprintln(g.Stdout, out)
	return err
}

// operand is one matrix of a job file. Data is kept as a raw node so it can be
// decoded into the element type selected by the job.
type operand struct {
	Rows int       `yaml:"rows"`
	Cols int       `yaml:"cols"`
	Data yaml.Node `yaml:"data"`
}

// job is the YAML document accepted by the eval command:
//
//	op: mul            # add | mul | hadamard
//	element: int       # float (default) | int | bool | minplus
//	a: {rows: 2, cols: 3, data: [1, 2, 3, 4, 5, 6]}
//	b: {rows: 3, cols: 1, data: [1, 0, 1]}
type job struct {
	Op      string  `yaml:"op"`
	Element string  `yaml:"element"`
	A       operand `yaml:"a"`
	B       operand `yaml:"b"`
}

func decodeJob(r io.Reader) (j job, err error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err = dec.Decode(&j); err != nil {
		return j, fmt.Errorf("decode job: %w", err)
	}

	return j, nil
}

// run dispatches on the element kind.
func (j job) run(workers int, opts ...matrix.RenderOption) (string, error) {
	switch j.Element {
	case "", elementFloat:
		return evaluate[float64](algebra.Numeric[float64]{}, j, workers, opts...)
	case elementInt:
		return evaluate[int64](algebra.Numeric[int64]{}, j, workers, opts...)
	case elementBool:
		return evaluate[bool](algebra.Boolean{}, j, workers, opts...)
	case elementMinPlus:
		return evaluate[float64](algebra.MinPlus{}, j, workers, opts...)
	default:
		return "", fmt.Errorf("%q: %w", j.Element, errUnknownElement)
	}
}

// load decodes the operand elements as T and builds the matrix.
func load[T any](name string, o operand) (*matrix.Dense[T], error) {
	var elements []T
	if !o.Data.IsZero() {
		if err := o.Data.Decode(&elements); err != nil {
			return nil, fmt.Errorf("operand %s: %w", name, err)
		}
	}

	m, err := matrix.New(o.Rows, o.Cols, elements)
	if err != nil {
		return nil, fmt.Errorf("operand %s: %w", name, err)
	}

	return m, nil
}

func evaluate[T any](s algebra.Semiring[T], j job, workers int, opts ...matrix.RenderOption) (string, error) {
	a, err := load[T]("a", j.A)
	if err != nil {
		return "", err
	}
	b, err := load[T]("b", j.B)
	if err != nil {
		return "", err
	}

	var res *matrix.Dense[T]
	switch j.Op {
	case opAdd:
		res, err = matrix.AddWith(s, a, b)
	case opHadamard:
		res, err = matrix.HadamardWith(s, a, b)
	case opMul:
		if workers == 0 {
			res, err = matrix.MulWith(s, a, b)
		} else {
			res, err = matrix.MulParallelWith(s, a, b, max(workers, 0))
		}
	default:
		return "", fmt.Errorf("%q: %w", j.Op, errUnknownOp)
	}
	if err != nil {
		return "", err
	}

	return res.Render(opts...), nil
}
