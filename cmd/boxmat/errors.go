// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

// errorPrefix returns a red "ERROR" tag when w is a terminal, plain text otherwise.
func errorPrefix(w *os.File) string {
	au := aurora.NewAurora(isatty.IsTerminal(w.Fd()))
	return au.Red("ERROR").String()
}
