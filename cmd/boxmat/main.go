// SPDX-License-Identifier: MIT

// Command boxmat is a small playground for the boxmat matrix packages.
//
//	boxmat                 # same as "boxmat demo"
//	boxmat demo            # render the demonstration matrices
//	boxmat eval job.yaml   # evaluate a YAML job file
package main

import (
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
)

// globals are shared with every command through kong bindings.
type globals struct {
	Stdout io.Writer
}

type cli struct {
	Demo demoCmd `cmd:"" default:"1" help:"render the demonstration matrices"`
	Eval evalCmd `cmd:"" help:"evaluate a YAML job file and render the result"`
}

func newParser(c *cli, g *globals, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(
		c,
		append([]kong.Option{
			kong.Name("boxmat"),
			kong.Description("generic dense matrices: construct, combine, render"),
			kong.UsageOnError(),
			kong.Bind(g),
		}, options...)...,
	)
}

func main() {
	var (
		err    error
		shell  cli
		ctx    *kong.Context
		parser *kong.Kong
	)

	log.SetFlags(log.Lshortfile | log.LUTC | log.Ltime)

	if parser, err = newParser(&shell, &globals{Stdout: os.Stdout}); err != nil {
		log.Fatalln(errorPrefix(os.Stderr), err)
	}

	if ctx, err = parser.Parse(os.Args[1:]); err != nil {
		log.Println(errorPrefix(os.Stderr), err)
		os.Exit(1)
	}

	if err = ctx.Run(); err != nil {
		log.Println(errorPrefix(os.Stderr), err)
		os.Exit(1)
	}
}
