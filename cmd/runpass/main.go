package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/runpass/runpass"
)

func main() {
	var verbose bool
	flag.BoolVar(&verbose, "v", false,
		"print a result line for every unit, not just failures")

	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: runpass [-v] <unit.go> ...")
		os.Exit(1)
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	failed := 0
	for _, path := range flag.Args() {
		res, err := runpass.Check(path)
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(os.Stderr, "%s %s\n", red("FAIL"), path)
			fmt.Fprintln(os.Stderr, err.Error())
		case res.Skipped:
			if verbose {
				reason := res.SkipReason
				if reason == "" {
					reason = "no reason given"
				}
				fmt.Printf("skip %s (%s)\n", path, reason)
			}
		default:
			if verbose {
				fmt.Printf("%s   %s (%s)\n", green("ok"), path, res.Mode)
			}
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
