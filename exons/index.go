package exons

import (
	"github.com/vertgenlab/gonomics/numbers"
	"golang.org/x/exp/slices"
	"log"
	"sort"
	"strings"
)

// Index stores every exon of a gene model grouped by chromosome. Each chromosome's
// exons are sorted by (Start, End) with ties kept in insertion order. An Index is
// read-only once built and is safe for concurrent use.
type Index struct {
	chroms  []chromExons   // in order of first appearance
	nameMap map[string]int // maps chr name to index in chroms
}

// chromExons has the exons of a single reference sequence.
type chromExons struct {
	name  string
	exons []Exon // sorted by (Start, End)
	byEnd []int  // positions in exons, sorted by (End, Start)
}

// String method for Index enables easy writing with the fmt package.
// One line per exon: chrom, start, end, gene, exon number.
func (idx *Index) String() string {
	answer := new(strings.Builder)
	for i := range idx.chroms {
		for _, e := range idx.chroms[i].exons {
			answer.WriteString(e.Chrom)
			answer.WriteByte('\t')
			answer.WriteString(e.String())
			answer.WriteByte('\n')
		}
	}
	return answer.String()
}

// Chroms returns chromosome names in the order they were first seen.
func (idx *Index) Chroms() []string {
	ans := make([]string, len(idx.chroms))
	for i := range idx.chroms {
		ans[i] = idx.chroms[i].name
	}
	return ans
}

// Has reports whether chr has an entry in the index.
func (idx *Index) Has(chr string) bool {
	_, found := idx.nameMap[chr]
	return found
}

// Len returns the number of exons stored for chr.
func (idx *Index) Len(chr string) int {
	c := idx.chrom(chr)
	if c == nil {
		return 0
	}
	return len(c.exons)
}

// Size returns the number of exons stored across all chromosomes.
func (idx *Index) Size() int {
	var ans int
	for i := range idx.chroms {
		ans += len(idx.chroms[i].exons)
	}
	return ans
}

// Exons returns a copy of the sorted exon list for chr.
func (idx *Index) Exons(chr string) []Exon {
	c := idx.chrom(chr)
	if c == nil {
		return nil
	}
	return slices.Clone(c.exons)
}

func (idx *Index) chrom(chr string) *chromExons {
	i, found := idx.nameMap[chr]
	if !found {
		return nil
	}
	return &idx.chroms[i]
}

// Builder accumulates exons and produces an Index. A Builder may only be built once.
type Builder struct {
	chroms  []chromExons
	nameMap map[string]int
	built   bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{nameMap: make(map[string]int)}
}

// Add inserts a single exon. Chromosomes are created on first use.
func (b *Builder) Add(e Exon) {
	if b.built {
		log.Panicln("exons: Add called after Build")
	}
	i, found := b.nameMap[e.Chrom]
	if !found {
		i = len(b.chroms)
		b.chroms = append(b.chroms, chromExons{name: e.Chrom})
		b.nameMap[e.Chrom] = i
	}
	b.chroms[i].exons = append(b.chroms[i].exons, e)
}

// AddTranscript pairs starts and ends in listed order, numbering exons from 1.
// Pairing stops at the shorter of the two lists. The chromosome is registered
// even when no exons are paired.
func (b *Builder) AddTranscript(chr, name string, starts, ends []int) {
	if b.built {
		log.Panicln("exons: AddTranscript called after Build")
	}
	if _, found := b.nameMap[chr]; !found {
		b.nameMap[chr] = len(b.chroms)
		b.chroms = append(b.chroms, chromExons{name: chr})
	}
	n := numbers.Min(len(starts), len(ends))
	for i := 0; i < n; i++ {
		b.Add(Exon{Chrom: chr, Start: starts[i], End: ends[i], Gene: name, Number: i + 1})
	}
}

// Build sorts every chromosome and freezes the Builder.
func (b *Builder) Build() *Index {
	if b.built {
		log.Panicln("exons: Build called twice")
	}
	b.built = true
	for i := range b.chroms {
		c := &b.chroms[i]
		sort.SliceStable(c.exons, func(j, k int) bool {
			return compareStartEnd(c.exons[j], c.exons[k]) < 0
		})
		c.byEnd = make([]int, len(c.exons))
		for j := range c.byEnd {
			c.byEnd[j] = j
		}
		sort.SliceStable(c.byEnd, func(j, k int) bool {
			a, z := c.exons[c.byEnd[j]], c.exons[c.byEnd[k]]
			switch {
			case a.End < z.End:
				return true
			case a.End > z.End:
				return false
			default:
				return a.Start < z.Start
			}
		})
	}
	idx := &Index{chroms: b.chroms, nameMap: b.nameMap}
	b.chroms, b.nameMap = nil, nil
	return idx
}

func compareStartEnd(a, b Exon) int {
	switch {
	case a.Start < b.Start:
		return -1
	case a.Start > b.Start:
		return 1
	case a.End < b.End:
		return -1
	case a.End > b.End:
		return 1
	default:
		return 0
	}
}
