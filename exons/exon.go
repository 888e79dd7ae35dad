package exons

import (
	"fmt"
	"log"
	"strings"
)

// Exon is one exonic segment of one transcript. Coordinates follow the refGene
// convention: Start is 0-based and End is 1-based, so Start <= End.
type Exon struct {
	Chrom  string
	Start  int
	End    int
	Gene   string // transcript or gene name the exon was listed under
	Number int    // 1-based position of the exon in the transcript's listed order
}

// String method for Exon enables easy writing with the fmt package.
func (e Exon) String() string {
	return fmt.Sprintf("%s:%d[%d-%d]", e.Gene, e.Number, e.Start, e.End)
}

// ListString formats a set of exons as [a, b, c].
func ListString(e []Exon) string {
	s := new(strings.Builder)
	s.WriteByte('[')
	for i := range e {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(e[i].String())
	}
	s.WriteByte(']')
	return s.String()
}

// Direction is the orientation of a breakpoint end. A minus-direction breakpoint
// abuts an exon start, a plus-direction breakpoint abuts an exon end.
type Direction byte

const (
	Plus  Direction = '+'
	Minus Direction = '-'
)

func (d Direction) String() string {
	return string(d)
}

// ParseDirection converts a "+" or "-" token to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "+":
		return Plus, nil
	case "-":
		return Minus, nil
	default:
		return 0, fmt.Errorf("unrecognized direction: '%s'", s)
	}
}

// boundary returns the coordinate of e that a breakpoint with direction d is compared to.
func (e Exon) boundary(d Direction) int {
	switch d {
	case Minus:
		return e.Start
	case Plus:
		return e.End
	default:
		log.Panicf("unrecognized direction: '%c'", d)
		return 0
	}
}

// Close reports whether pos lies within margin of the exon boundary selected by d.
// Both ends of the window are inclusive.
func Close(pos int, e Exon, d Direction, margin int) bool {
	b := e.boundary(d)
	return pos >= b-margin && pos <= b+margin
}
