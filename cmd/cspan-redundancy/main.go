package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"os"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/cspan/cmd"
	"github.com/timtadh/cspan/stats"
)

func init() {
	cmd.UsageMessage = "cspan-redundancy --help"
	cmd.ExtendedMessage = `
cspan-redundancy - fraction of redundant patterns in a pattern file

$ cspan-redundancy [Options] <patterns-path>

A pattern is redundant when it is a proper contiguous infix of another
listed pattern with the same support. 0 means no listed pattern is
redundant.

Options
    -h, --help                view this message
    --delimiter=<string>      symbol delimiter of the file (default ' ')
    --skip-log=<level>        don't output the given log level.
`
}

func main() {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"h",
		[]string{
			"help",
			"delimiter=",
			"skip-log=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	delimiter := " "
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "--delimiter":
			delimiter = oa.Arg()
		case "--skip-log":
			errors.SkipLogging[oa.Arg()] = true
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "You must supply exactly one patterns path\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	patterns, err := cmd.LoadPatterns(cmd.AssertFileOrDirExists(args[0]), delimiter)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		os.Exit(cmd.ErrorCodes["badfile"])
	}
	score, err := stats.Redundancy(patterns)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		os.Exit(cmd.ErrorCodes["error"])
	}
	errors.Logf("INFO", "%d patterns", len(patterns))
	fmt.Println(score)
}
