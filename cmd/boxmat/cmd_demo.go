// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/boxmat/matrix"
)

type demoCmd struct{}

// Run renders a zero-padded int matrix followed by an 8×8 matrix of float ones.
func (c *demoCmd) Run(g *globals) error {
	m, err := matrix.New(3, 2, []int{1, 2, 3, 90000, 5})
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(g.Stdout, m); err != nil {
		return err
	}

	ones, err := matrix.Ones[float64](8, 8)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.Stdout, ones)

	return err
}
