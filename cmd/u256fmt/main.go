package main

import (
	"fmt"
	"os"

	"github.com/hexforge/u256strings/pkg/tokenuri"
	"github.com/hexforge/u256strings/pkg/u256str"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: u256fmt <value> [<value> ...]")
		fmt.Fprintln(os.Stderr, "values are decimal, or hexadecimal when 0x-prefixed")
		os.Exit(2)
	}

	exitCode := 0
	for _, arg := range os.Args[1:] {
		v, err := u256str.Parse(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "u256fmt: %v\n", err)
			exitCode = 1
			continue
		}
		fmt.Println(tokenuri.MultiFormat(v))
	}
	os.Exit(exitCode)
}
