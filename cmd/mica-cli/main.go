// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"mica/internal/errors"
	"mica/internal/interp"
)

func main() {
	inline := flag.String("e", "", "evaluate the given program instead of a file")
	flag.Usage = usage
	flag.Parse()

	var source, name string
	switch {
	case *inline != "":
		source, name = *inline, "<inline>"
	case flag.NArg() == 1:
		name = flag.Arg(0)
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
			os.Exit(1)
		}
		source = string(data)
	default:
		usage()
		os.Exit(1)
	}

	startTime := time.Now()
	result, ok, runErr := interp.Run(source)
	duration := time.Since(startTime)

	if runErr != nil {
		reporter := errors.NewReporter(name, source)
		fmt.Fprint(os.Stderr, reporter.Format(runErr))
		color.Red("Run failed after %s", formatDuration(duration))
		os.Exit(1)
	}

	if ok {
		fmt.Println(result)
	} else {
		fmt.Println("no value")
	}
	color.Green("Evaluated %s in %s", name, formatDuration(duration))
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: mica-cli <file.mica>")
	fmt.Fprintln(os.Stderr, "       mica-cli -e \"let x = 3 * 2\"")
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
