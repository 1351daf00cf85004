package reporters

import (
	"bufio"
	"os"
)

import (
	"github.com/timtadh/cspan/config"
	"github.com/timtadh/cspan/types/sequence"
)

// File writes every pattern to <output>/<name><ext> in the interchange
// format.
type File struct {
	config   *config.Config
	fmt      *sequence.Formatter
	f        *os.File
	patterns *bufio.Writer
}

func NewFile(c *config.Config, fmt *sequence.Formatter, patternsFilename string) (*File, error) {
	f, err := os.Create(c.OutputFile(patternsFilename + fmt.FileExt()))
	if err != nil {
		return nil, err
	}
	r := &File{
		config:   c,
		fmt:      fmt,
		f:        f,
		patterns: bufio.NewWriter(f),
	}
	return r, nil
}

func (r *File) Path() string {
	return r.f.Name()
}

func (r *File) Report(p *sequence.Pattern) error {
	return r.fmt.FormatPattern(r.patterns, p)
}

func (r *File) Close() error {
	err := r.patterns.Flush()
	cerr := r.f.Close()
	if err != nil {
		return err
	}
	return cerr
}
