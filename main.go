package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gobf/pkg/compiler"
	"gobf/pkg/machine"
	"gobf/pkg/utils"
)

func main() {
	filePath := flag.String("file", "", "program file to run")
	tapeSize := flag.Int("tape", machine.DefaultTapeSize, "tape size in cells")
	dump := flag.Bool("dump", false, "print the compiled program instead of running it")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: provide -file <program>")
		flag.Usage()
		os.Exit(2)
	}

	source, err := utils.ReadSource(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read program file %q: %v\n", *filePath, err)
		os.Exit(2)
	}

	prog, err := compiler.Compile(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compilation failed: %v\n", err)
		os.Exit(1)
	}

	if *dump {
		fmt.Print(compiler.Listing(prog))
		return
	}

	if err := runProgram(prog, *tapeSize, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "run failed for %q: %v\n", *filePath, err)
		os.Exit(3)
	}
}

// runProgram executes prog on a fresh machine wired to the given streams.
func runProgram(prog compiler.Program, tapeSize int, in io.Reader, out io.Writer) error {
	m := machine.NewWithTapeSize(prog, tapeSize)
	m.Input = in
	m.Output = out
	return m.Run()
}
