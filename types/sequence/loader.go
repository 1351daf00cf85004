package sequence

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

const (
	SupportPrefix = "#SUP:"
	CoverPrefix   = "#COVER:"
	itemEnd       = "-1"
	sequenceEnd   = "-2"
)

// maxLineSize bounds a single record.
const maxLineSize = 64 * 1024 * 1024

// Loader reads the SPMF style line format. Each non-empty line is one
// record. The tokens -1 and -2 (itemset and sequence terminators) are
// skipped.
type Loader struct {
	Delimiter string
}

func NewLoader(delimiter string) *Loader {
	if delimiter == "" {
		delimiter = " "
	}
	return &Loader{Delimiter: delimiter}
}

// LoadSequences parses a sequence database. A token starting with '#' ends
// the line. Lines containing non-integer symbols are logged and skipped.
func (l *Loader) LoadSequences(input io.Reader) ([]Sequence, error) {
	seqs := make([]Sequence, 0, 100)
	err := l.lines(input, func(lineno int, line string) {
		seq, err := l.ParseSequence(line)
		if err != nil {
			errors.Logf("WARN", "skipping sequence on line %d: %v", lineno, err)
			return
		}
		seqs = append(seqs, seq)
	})
	if err != nil {
		return nil, err
	}
	return seqs, nil
}

// LoadPatterns parses a mined pattern file. #SUP: and #COVER: annotations are
// read, any other '#' token (such as an algorithm suffix) is ignored.
func (l *Loader) LoadPatterns(input io.Reader) ([]*Pattern, error) {
	patterns := make([]*Pattern, 0, 100)
	err := l.lines(input, func(lineno int, line string) {
		p, err := l.ParsePattern(line)
		if err != nil {
			errors.Logf("WARN", "skipping pattern on line %d: %v", lineno, err)
			return
		}
		patterns = append(patterns, p)
	})
	if err != nil {
		return nil, err
	}
	return patterns, nil
}

func (l *Loader) lines(input io.Reader, do func(lineno int, line string)) error {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		do(lineno, line)
	}
	return scanner.Err()
}

func (l *Loader) tokens(line string) []string {
	cols := strings.Split(strings.TrimSpace(line), l.Delimiter)
	toks := make([]string, 0, len(cols))
	for _, col := range cols {
		col = strings.TrimSpace(col)
		if col == "" || col == itemEnd || col == sequenceEnd {
			continue
		}
		toks = append(toks, col)
	}
	return toks
}

func (l *Loader) ParseSequence(line string) (Sequence, error) {
	toks := l.tokens(line)
	seq := make(Sequence, 0, len(toks))
	for _, tok := range toks {
		if strings.HasPrefix(tok, "#") {
			break
		}
		sym, err := parseSymbol(tok)
		if err != nil {
			return nil, err
		}
		seq = append(seq, sym)
	}
	return seq, nil
}

func (l *Loader) ParsePattern(line string) (*Pattern, error) {
	toks := l.tokens(line)
	symbols := make(Sequence, 0, len(toks))
	support := 0
	cover := 0
	covered := false
	for _, tok := range toks {
		switch {
		case strings.HasPrefix(tok, SupportPrefix):
			s, err := strconv.Atoi(tok[len(SupportPrefix):])
			if err != nil {
				return nil, errors.Errorf("bad support annotation '%s'", tok)
			}
			support = s
		case strings.HasPrefix(tok, CoverPrefix):
			c, err := strconv.Atoi(tok[len(CoverPrefix):])
			if err != nil {
				return nil, errors.Errorf("bad cover annotation '%s'", tok)
			}
			cover = c
			covered = true
		case strings.HasPrefix(tok, "#"):
			continue
		default:
			sym, err := parseSymbol(tok)
			if err != nil {
				return nil, err
			}
			symbols = append(symbols, sym)
		}
	}
	if covered {
		return NewCoveredPattern(symbols, support, cover), nil
	}
	return NewPattern(symbols, support), nil
}

func parseSymbol(tok string) (Symbol, error) {
	i, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, errors.Errorf("non int symbol '%s'", tok)
	}
	return Symbol(i), nil
}
