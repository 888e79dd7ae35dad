package exons

import (
	"fmt"
	"golang.org/x/exp/slices"
)

// SearchMode selects how FindNeighbors collects exons around a position.
type SearchMode byte

const (
	// LocalScan expands outward from the binary search insertion point and stops
	// at the first exon that is not close. Exons within margin that are separated
	// from the insertion point by a non-matching exon are not reported.
	LocalScan SearchMode = iota

	// RangeQuery reports every exon whose selected boundary lies within margin.
	RangeQuery
)

func (m SearchMode) String() string {
	switch m {
	case LocalScan:
		return "local"
	case RangeQuery:
		return "range"
	default:
		return fmt.Sprintf("SearchMode(%d)", byte(m))
	}
}

// ParseSearchMode converts "local" or "range" to a SearchMode.
func ParseSearchMode(s string) (SearchMode, error) {
	switch s {
	case "local":
		return LocalScan, nil
	case "range":
		return RangeQuery, nil
	default:
		return 0, fmt.Errorf("unrecognized search mode: '%s' (options: local, range)", s)
	}
}

// FindNeighbors returns the exons on chr whose start (Minus) or end (Plus) is
// within margin of pos. An unknown chromosome, or a direction other than Plus
// or Minus, yields an empty result.
func (idx *Index) FindNeighbors(chr string, pos int, d Direction, margin int, mode SearchMode) []Exon {
	c := idx.chrom(chr)
	if c == nil || len(c.exons) == 0 || (d != Plus && d != Minus) {
		return nil
	}
	if margin < 0 {
		margin = 0
	}
	switch mode {
	case RangeQuery:
		return c.rangeQuery(pos, d, margin)
	default:
		return c.localScan(pos, d, margin)
	}
}

// insertionPoint is the leftmost position a probe exon (pos, pos) could be
// inserted at while keeping exons sorted. Probes sort before equal keys.
func (c *chromExons) insertionPoint(pos int) int {
	i, _ := slices.BinarySearchFunc(c.exons, pos, func(e Exon, p int) int {
		return compareStartEnd(e, Exon{Start: p, End: p})
	})
	return i
}

func (c *chromExons) localScan(pos int, d Direction, margin int) []Exon {
	var ans []Exon
	i := c.insertionPoint(pos)
	for j := i - 1; j >= 0 && Close(pos, c.exons[j], d, margin); j-- {
		ans = append(ans, c.exons[j])
	}
	for j := i; j < len(c.exons) && Close(pos, c.exons[j], d, margin); j++ {
		ans = append(ans, c.exons[j])
	}
	return ans
}

func (c *chromExons) rangeQuery(pos int, d Direction, margin int) []Exon {
	var ans []Exon
	lo, hi := pos-margin, pos+margin
	switch d {
	case Minus:
		first, _ := slices.BinarySearchFunc(c.exons, lo, func(e Exon, t int) int { return cmpInt(e.Start, t) })
		for j := first; j < len(c.exons) && c.exons[j].Start <= hi; j++ {
			ans = append(ans, c.exons[j])
		}
	case Plus:
		first, _ := slices.BinarySearchFunc(c.byEnd, lo, func(k int, t int) int { return cmpInt(c.exons[k].End, t) })
		for j := first; j < len(c.byEnd) && c.exons[c.byEnd[j]].End <= hi; j++ {
			ans = append(ans, c.exons[c.byEnd[j]])
		}
	}
	return ans
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
