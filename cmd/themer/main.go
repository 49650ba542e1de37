// Themer - accessible colour themes from three seed colours
//
// Themer builds shade ramps from a primary, background and text colour and
// derives a UI theme whose slots meet WCAG contrast thresholds.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"fmt"
	"os"

	"github.com/jmylchreest/themer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
