package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

type Options struct {
	Input  string `short:"i" long:"in" description:"Input file path (GeoJSON/JSON). Reads from stdin if empty"`
	Output string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Read Input
	var inputData []byte
	var err error

	if opts.Input != "" {
		inputData, err = os.ReadFile(opts.Input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
			os.Exit(1)
		}
	} else {
		inputData, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	m := minify.New()
	m.AddFunc("application/json", mjson.Minify)

	outputData, err := m.Bytes("application/json", inputData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error minifying JSON: %v\n", err)
		os.Exit(1)
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, outputData, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Minified %d bytes to %d (%s)\n", len(inputData), len(outputData), opts.Output)
	} else {
		fmt.Println(string(outputData))
	}
}
