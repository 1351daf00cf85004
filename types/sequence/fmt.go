package sequence

import (
	"fmt"
	"io"
	"strings"
)

// Formatter writes patterns in the line format read by Loader.LoadPatterns.
// Suffix is the algorithm token written after the annotations.
type Formatter struct {
	Suffix string
}

func (f *Formatter) FileExt() string {
	return ".spmf"
}

func (f *Formatter) PatternName(p *Pattern) string {
	return p.Symbols.String()
}

func (f *Formatter) FormatPattern(w io.Writer, p *Pattern) error {
	parts := make([]string, 0, len(p.Symbols)+3)
	for _, sym := range p.Symbols {
		parts = append(parts, fmt.Sprintf("%d", sym))
	}
	parts = append(parts, fmt.Sprintf("%s%d", SupportPrefix, p.Support))
	if p.Covered {
		parts = append(parts, fmt.Sprintf("%s%d", CoverPrefix, p.Cover))
	}
	if f.Suffix != "" {
		parts = append(parts, f.Suffix)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

func (f *Formatter) FormatPatterns(w io.Writer, patterns []*Pattern) error {
	for _, p := range patterns {
		if err := f.FormatPattern(w, p); err != nil {
			return err
		}
	}
	return nil
}
