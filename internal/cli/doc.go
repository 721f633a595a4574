// Package cli implements the interactive SkinFlow shell: a REPL over the
// session store, the scan history, the product catalog and the routine
// tracker. Input helpers live in input.go; each command handler is a method
// on App in its own file.
package cli
