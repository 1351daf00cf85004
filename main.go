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
	"log"
	"os"
	"runtime/pprof"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/cspan/closure"
	"github.com/timtadh/cspan/cmd"
	"github.com/timtadh/cspan/config"
)

func init() {
	cmd.UsageMessage = "cspan --help"
	cmd.ExtendedMessage = `
cspan - closed contiguous sequential pattern mining

$ cspan -o <path> --support=<float> [Global Options] \
    <input-path> \
    [<reporter> [Reporter Options]]

Note: You may either supply the <input-path> as a regular file, a gzipped
      file or a directory of files. If supplying a gzip file the file
      extension must be '.gz'.
Note: If you don't supply a reporter by default it will use 'chain log file'.
      See the the documentations for Reporters for details.

Global Options
    -h, --help                view this message
    --policies                show the available closure policies
    --reporters               show the available reporters
    -c, --config=<path>       yaml config file. keys: output, support,
                              policy, delimiter. flags override the file.
    -o, --output=<path>       path to output directory (required)
                              NB: will overwrite contents of dir
    --support=<float>         relative minimum support in [0,1] (required)
    --policy=<name>           closure policy (default prefix)
    --delimiter=<string>      symbol delimiter of the input (default ' ')
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Input Format
    one sequence per line, symbols are integers separated by the delimiter.
    -1 and -2 tokens are ignored and a '#' token ends the line.

        1 2 3 4 5
        1 2 3 4 6 -1 -2

Policies
    prefix                    a pattern revokes its length-(k-1) prefix when
                              they have equal support (alias: closed)
    strict                    prefix and additionally the length-(k-1) suffix
    all                       every frequent pattern, no revocation
    max                       a pattern revokes its prefix and suffix
                              regardless of support (alias: maximal)

    Note: --policy=max reports only the patterns not contained in another
          frequent pattern (the reduced subset). It matches the output of
          '--policy=all' followed by the max reporter. The default prefix
          policy also keeps shorter patterns whose support is higher than
          that of their extensions.

Reporters
    chain                     chain several reporters together (end the chain
                              with endchain)
    log                       log the patterns
    file                      write the patterns to a file in the output dir
    count                     write the number of patterns to a file
    sqlite                    store the run and its patterns in a sqlite db
    max                       takes an "inner reporter" and passes it only the
                              patterns not contained in another pattern
    unique                    takes an "inner reporter" and passes it only
                              the first pattern with given symbols
    skip                      takes an "inner reporter" and passes it every
                              n-th pattern

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -p, patterns=<name>   the prefix of the name of the file in the output
                              directory to write the patterns (default
                              patterns). the extension is .spmf

    count Options
        -f, filename=<name>   name of the file in the output directory
                              (default count)

    sqlite Options
        -d, db=<path>         path of the database (default
                              <output>/patterns.db)

    skip Options
        -n, every=<int>       forward every n-th pattern (default 1)

    Examples

        $ cspan -o /tmp/cspan --support=.5 ./data/sequences.txt

        $ cspan -o /tmp/cspan --support=.25 --policy=strict \
            ./data/sequences.txt.gz \
            chain log max file -p maximal endchain sqlite

        $ cspan -c cspan.yaml --skip-log=DEBUG ./data/ count
`
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"hc:o:",
		[]string{
			"help",
			"policies", "reporters",
			"config=",
			"output=",
			"support=",
			"policy=",
			"delimiter=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	conf := config.Default()
	support := -1.0
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-c", "--config":
			c, err := config.Load(cmd.AssertFileOrDirExists(oa.Arg()))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				cmd.Usage(cmd.ErrorCodes["badfile"])
			}
			conf = c
			support = c.Support
		}
	}

	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-c", "--config":
		case "-o", "--output":
			conf.Output = oa.Arg()
		case "--support":
			support = cmd.ParseFloat(oa.Arg())
		case "--policy":
			conf.Policy = oa.Arg()
		case "--delimiter":
			conf.Delimiter = oa.Arg()
		case "--policies":
			fmt.Fprintln(os.Stderr, "Policies:")
			for _, p := range closure.Policies {
				fmt.Fprintln(os.Stderr, "  ", p)
			}
			os.Exit(0)
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if support < 0 || support > 1 {
		fmt.Fprintf(os.Stderr, "Support must be supplied and in [0,1]\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	conf.Support = support

	if _, err := conf.ClosurePolicy(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if conf.Output == "" {
		fmt.Fprintf(os.Stderr, "You must supply an output dir (-o)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	conf.Output = cmd.EmptyDir(conf.Output)

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	return cmd.Main(args, conf)
}
