// Package link classifies a breakpoint pair from the exons found near each end.
package link

import (
	"fmt"
	"github.com/dasnellings/svAnnotate/exons"
	"strings"
)

// Kind is the outcome of classifying a breakpoint pair.
type Kind byte

const (
	Unlinked      Kind = iota // neither end is near an exon boundary
	PartialLink               // exactly one end is near an exon boundary
	CrossGeneLink             // both ends are near exons, but of no common gene
	ExonJunction              // both ends are near exons of at least one common gene
)

// Kinds lists every Kind in declaration order.
var Kinds = []Kind{Unlinked, PartialLink, CrossGeneLink, ExonJunction}

// Label is a column-friendly name for k.
func (k Kind) Label() string {
	switch k {
	case Unlinked:
		return "no_gene_connection"
	case PartialLink:
		return "partial_gene_link"
	case CrossGeneLink:
		return "cross_gene_link"
	case ExonJunction:
		return "exon_exon_junction"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

func (k Kind) String() string {
	return k.Label()
}

// Side identifies one end of a breakpoint pair.
type Side byte

const (
	End1 Side = iota + 1
	End2
)

func (s Side) String() string {
	switch s {
	case End1:
		return "end1"
	case End2:
		return "end2"
	default:
		return "none"
	}
}

// Junction is a gene reached by both ends, with the exon number found on each side.
type Junction struct {
	Gene  string
	Exon1 int
	Exon2 int
}

func (j Junction) String() string {
	return fmt.Sprintf("(%s, %d, %d)", j.Gene, j.Exon1, j.Exon2)
}

// Classification is the result of Classify. Neighbors1 and Neighbors2 are the
// inputs; EmptySide is set only for PartialLink and Junctions only for ExonJunction.
type Classification struct {
	Kind       Kind
	EmptySide  Side
	Neighbors1 []exons.Exon
	Neighbors2 []exons.Exon
	Junctions  []Junction
}

// Linked returns the neighbor set of the non-empty side of a PartialLink.
func (c Classification) Linked() []exons.Exon {
	switch c.EmptySide {
	case End1:
		return c.Neighbors2
	case End2:
		return c.Neighbors1
	default:
		return nil
	}
}

// String renders the human-readable description of c.
func (c Classification) String() string {
	switch c.Kind {
	case Unlinked:
		return "no gene connection for line"
	case PartialLink:
		return fmt.Sprintf("partial gene link into %s", exons.ListString(c.Linked()))
	case CrossGeneLink:
		return fmt.Sprintf("breakpoint links two different genes: %s VS %s", exons.ListString(c.Neighbors1), exons.ListString(c.Neighbors2))
	case ExonJunction:
		s := new(strings.Builder)
		s.WriteString("exon exon junction: [")
		for i := range c.Junctions {
			if i > 0 {
				s.WriteString(", ")
			}
			s.WriteString(c.Junctions[i].String())
		}
		s.WriteByte(']')
		return s.String()
	default:
		return c.Kind.String()
	}
}

// Classify combines the neighbor sets of the two ends of a breakpoint pair.
// When several exons of one gene are near end 2, the last one listed is the
// one paired with end 1.
func Classify(n1, n2 []exons.Exon) Classification {
	ans := Classification{Neighbors1: n1, Neighbors2: n2}
	switch {
	case len(n1) == 0 && len(n2) == 0:
		ans.Kind = Unlinked
		return ans
	case len(n1) == 0:
		ans.Kind = PartialLink
		ans.EmptySide = End1
		return ans
	case len(n2) == 0:
		ans.Kind = PartialLink
		ans.EmptySide = End2
		return ans
	}

	genes2 := make(map[string]exons.Exon, len(n2))
	for _, e := range n2 {
		genes2[e.Gene] = e
	}
	for _, e := range n1 {
		if match, found := genes2[e.Gene]; found {
			ans.Junctions = append(ans.Junctions, Junction{Gene: e.Gene, Exon1: e.Number, Exon2: match.Number})
		}
	}

	if len(ans.Junctions) == 0 {
		ans.Kind = CrossGeneLink
	} else {
		ans.Kind = ExonJunction
	}
	return ans
}
