package cmd

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
	"compress/gzip"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/cspan/config"
	"github.com/timtadh/cspan/mine"
	"github.com/timtadh/cspan/reporters"
	"github.com/timtadh/cspan/stats"
	"github.com/timtadh/cspan/types/sequence"
)

var ErrorCodes map[string]int = map[string]int{
	"usage":    0,
	"error":    1,
	"version":  2,
	"opts":     3,
	"badint":   5,
	"badfloat": 6,
	"badfile":  7,
	"invalid":  8,
	"baddir":   9,
}

var UsageMessage string
var ExtendedMessage string

func Usage(code int) {
	fmt.Fprintln(os.Stderr, UsageMessage)
	if code == 0 {
		fmt.Fprintln(os.Stdout, ExtendedMessage)
		code = ErrorCodes["usage"]
	} else {
		fmt.Fprintln(os.Stderr, "Try -h or --help for help")
	}
	os.Exit(code)
}

func Input(input_path string) (reader io.Reader, closeall func()) {
	stat, err := os.Stat(input_path)
	if err != nil {
		panic(err)
	}
	if stat.IsDir() {
		return InputDir(input_path)
	} else {
		return InputFile(input_path)
	}
}

func InputFile(input_path string) (reader io.Reader, closeall func()) {
	freader, err := os.Open(input_path)
	if err != nil {
		panic(err)
	}
	if strings.HasSuffix(input_path, ".gz") {
		greader, err := gzip.NewReader(freader)
		if err != nil {
			panic(err)
		}
		return greader, func() {
			greader.Close()
			freader.Close()
		}
	}
	return freader, func() {
		freader.Close()
	}
}

// InputDir concatenates the regular files of a directory in name order. Each
// file is followed by a newline so a missing final newline cannot join the
// last line of one file to the first line of the next.
func InputDir(input_dir string) (reader io.Reader, closeall func()) {
	var readers []io.Reader
	var closers []func()
	dir, err := ioutil.ReadDir(input_dir)
	if err != nil {
		panic(err)
	}
	for _, info := range dir {
		if info.IsDir() {
			continue
		}
		creader, closer := InputFile(path.Join(input_dir, info.Name()))
		readers = append(readers, creader, strings.NewReader("\n"))
		closers = append(closers, closer)
	}
	reader = io.MultiReader(readers...)
	return reader, func() {
		for _, closer := range closers {
			closer()
		}
	}
}

// LoadSequences reads a sequence database from a file, gzip file or
// directory.
func LoadSequences(inputPath, delimiter string) ([]sequence.Sequence, error) {
	input, closer := Input(inputPath)
	defer closer()
	return sequence.NewLoader(delimiter).LoadSequences(input)
}

// LoadPatterns reads patterns in the interchange format.
func LoadPatterns(inputPath, delimiter string) ([]*sequence.Pattern, error) {
	input, closer := Input(inputPath)
	defer closer()
	return sequence.NewLoader(delimiter).LoadPatterns(input)
}

func ParseInt(str string) int {
	i, err := strconv.Atoi(str)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected an int\n", str)
		Usage(ErrorCodes["badint"])
	}
	return i
}

func ParseFloat(str string) float64 {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected a float\n", str)
		Usage(ErrorCodes["badfloat"])
	}
	return f
}

func EmptyDir(dir string) string {
	dir = path.Clean(dir)
	_, err := os.Stat(dir)
	if err != nil && os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0775)
		if err != nil {
			log.Fatal(err)
		}
	} else if err != nil {
		log.Fatal(err)
	} else {
		err := os.RemoveAll(dir)
		if err != nil {
			log.Fatal(err)
		}
		err = os.MkdirAll(dir, 0775)
		if err != nil {
			log.Fatal(err)
		}
	}
	return dir
}

func AssertFileOrDirExists(fname string) string {
	fname = path.Clean(fname)
	_, err := os.Stat(fname)
	if err != nil && os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "File '%s' does not exist!\n", fname)
		Usage(ErrorCodes["badfile"])
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		Usage(ErrorCodes["badfile"])
	}
	return fname
}

func AssertFile(fname string) string {
	fname = path.Clean(fname)
	fi, err := os.Stat(fname)
	if err != nil && os.IsNotExist(err) {
		return fname
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		Usage(ErrorCodes["badfile"])
	} else if fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was a directory, %s\n", fname)
		Usage(ErrorCodes["badfile"])
	}
	return fname
}

type Reporter func(map[string]Reporter, []string, *sequence.Formatter, *config.Config) (mine.Reporter, []string)

// noOpts parses the options of a reporter which only takes -h.
func noOpts(argv []string) []string {
	args, optargs, err := getopt.GetOpt(argv, "h", []string{"help"})
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		default:
			errors.Logf("ERROR", "Unknown flag '%v'", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return args
}

func listReporters(reports map[string]Reporter) {
	names := make([]string, 0, len(reports))
	for k := range reports {
		names = append(names, k)
	}
	sort.Strings(names)
	fmt.Fprintln(os.Stderr, "Reporters:")
	for _, k := range names {
		fmt.Fprintln(os.Stderr, "  ", k)
	}
}

// inner builds the reporter named by args[0] for a wrapping reporter.
func inner(name string, reports map[string]Reporter, args []string, fmtr *sequence.Formatter, conf *config.Config) (mine.Reporter, []string) {
	if len(args) == 0 {
		errors.Logf("ERROR", "You must supply an inner reporter to %v", name)
		fmt.Fprintf(os.Stderr, "try: %v file\n", name)
		Usage(ErrorCodes["opts"])
	} else if _, has := reports[args[0]]; !has {
		errors.Logf("ERROR", "Unknown reporter '%v'", args[0])
		listReporters(reports)
		Usage(ErrorCodes["opts"])
	}
	return reports[args[0]](reports, args[1:], fmtr, conf)
}

func logReporter(rptrs map[string]Reporter, argv []string, fmtr *sequence.Formatter, conf *config.Config) (mine.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hl:p:",
		[]string{
			"help",
			"level=",
			"prefix=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	level := "INFO"
	prefix := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-l", "--level":
			level = oa.Arg()
		case "-p", "--prefix":
			prefix = oa.Arg()
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return reporters.NewLog(fmtr, level, prefix), args
}

func fileReporter(rptrs map[string]Reporter, argv []string, fmtr *sequence.Formatter, conf *config.Config) (mine.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hp:",
		[]string{
			"help",
			"patterns=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	patterns := "patterns"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-p", "--patterns":
			patterns = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	fr, err := reporters.NewFile(conf, fmtr, patterns)
	if err != nil {
		errors.Logf("ERROR", "There was error creating output files\n")
		errors.Logf("ERROR", "%v\n", err)
		os.Exit(ErrorCodes["error"])
	}
	return fr, args
}

func countReporter(rptrs map[string]Reporter, argv []string, fmtr *sequence.Formatter, conf *config.Config) (mine.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hf:",
		[]string{
			"help",
			"filename=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	filename := "count"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-f", "--filename":
			filename = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	r, err := reporters.NewCount(conf, filename)
	if err != nil {
		errors.Logf("ERROR", "There was error creating output files\n")
		errors.Logf("ERROR", "%v\n", err)
		os.Exit(ErrorCodes["error"])
	}
	return r, args
}

func sqliteReporter(rptrs map[string]Reporter, argv []string, fmtr *sequence.Formatter, conf *config.Config) (mine.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hd:",
		[]string{
			"help",
			"db=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	dbPath := conf.OutputFile("patterns.db")
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-d", "--db":
			dbPath = AssertFile(oa.Arg())
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	r, err := reporters.NewSQLite(dbPath, conf)
	if err != nil {
		errors.Logf("ERROR", "There was error opening the sqlite db\n")
		errors.Logf("ERROR", "%v\n", err)
		os.Exit(ErrorCodes["error"])
	}
	errors.Logf("INFO", "sqlite run id %v", r.RunId)
	return r, args
}

func chainReporter(reports map[string]Reporter, argv []string, fmtr *sequence.Formatter, conf *config.Config) (mine.Reporter, []string) {
	args := noOpts(argv)
	rptrs := make([]mine.Reporter, 0, 10)
	for len(args) >= 1 {
		if args[0] == "endchain" {
			args = args[1:]
			break
		}
		if _, has := reports[args[0]]; !has {
			errors.Logf("ERROR", "Unknown reporter '%v'\n", args[0])
			listReporters(reports)
			Usage(ErrorCodes["opts"])
		}
		var rptr mine.Reporter
		rptr, args = reports[args[0]](reports, args[1:], fmtr, conf)
		rptrs = append(rptrs, rptr)
	}
	if len(rptrs) == 0 {
		errors.Logf("ERROR", "Empty chain")
		fmt.Fprintln(os.Stderr, "try: chain log file")
		Usage(ErrorCodes["opts"])
	}
	return &reporters.Chain{Reporters: rptrs}, args
}

func maxReporter(reports map[string]Reporter, argv []string, fmtr *sequence.Formatter, conf *config.Config) (mine.Reporter, []string) {
	args := noOpts(argv)
	rptr, args := inner("max", reports, args, fmtr, conf)
	m, err := reporters.NewMax(rptr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating max reporter '%v'\n", err)
		Usage(ErrorCodes["opts"])
	}
	return m, args
}

func uniqueReporter(reports map[string]Reporter, argv []string, fmtr *sequence.Formatter, conf *config.Config) (mine.Reporter, []string) {
	args := noOpts(argv)
	rptr, args := inner("unique", reports, args, fmtr, conf)
	return reporters.NewUnique(rptr), args
}

func skipReporter(reports map[string]Reporter, argv []string, fmtr *sequence.Formatter, conf *config.Config) (mine.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hn:",
		[]string{
			"help",
			"every=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	every := 1
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-n", "--every":
			every = ParseInt(oa.Arg())
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	rptr, args := inner("skip", reports, args, fmtr, conf)
	return reporters.NewSkip(every, rptr), args
}

var Reporters map[string]Reporter = map[string]Reporter{
	"log":    logReporter,
	"file":   fileReporter,
	"count":  countReporter,
	"sqlite": sqliteReporter,
	"chain":  chainReporter,
	"max":    maxReporter,
	"unique": uniqueReporter,
	"skip":   skipReporter,
}

func Main(args []string, conf *config.Config) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "You must supply exactly an input path\n")
		fmt.Fprintf(os.Stderr, "You gave: %v\n", args)
		Usage(ErrorCodes["opts"])
	}
	inputPath := AssertFileOrDirExists(args[0])
	args = args[1:]

	policy, err := conf.ClosurePolicy()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		Usage(ErrorCodes["opts"])
	}

	errors.Logf("INFO", "Got configuration about to load dataset")
	db, err := LoadSequences(inputPath, conf.Delimiter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "There was error during the loading process\n")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return ErrorCodes["error"]
	}
	conf.MinSupport = stats.MinSupport(len(db), conf.Support)
	fmtr := &sequence.Formatter{Suffix: policy.Suffix()}

	var rptr mine.Reporter
	if len(args) == 0 {
		rptr, _ = Reporters["chain"](Reporters, []string{"log", "file"}, fmtr, conf)
	} else if _, has := Reporters[args[0]]; !has {
		fmt.Fprintf(os.Stderr, "Unknown reporter '%v'\n", args[0])
		listReporters(Reporters)
		Usage(ErrorCodes["opts"])
	} else {
		rptr, args = Reporters[args[0]](Reporters, args[1:], fmtr, conf)
	}
	if len(args) > 0 {
		errors.Logf("WARN", "ignoring trailing arguments %v", args)
	}

	miner := mine.NewMiner(conf, policy)
	err = miner.Mine(db, rptr)
	cerr := rptr.Close()
	if e, is := err.(*mine.InvalidInput); is {
		fmt.Fprintf(os.Stderr, "%v\n", e)
		return ErrorCodes["invalid"]
	} else if err != nil {
		errors.Logf("ERROR", "%v", err)
		return ErrorCodes["error"]
	}
	if cerr != nil {
		errors.Logf("ERROR", "closing reporters: %v", cerr)
		return ErrorCodes["error"]
	}
	return 0
}
