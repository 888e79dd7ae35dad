package annotate

import (
	"fmt"
	"github.com/dasnellings/svAnnotate/link"
	"strings"
)

// Summary counts annotated records by classification.
type Summary struct {
	Records       int
	MissingChroms int // records with at least one end on an unannotated chromosome
	counts        map[link.Kind]int
}

// Add counts res.
func (s *Summary) Add(res Result) {
	if s.counts == nil {
		s.counts = make(map[link.Kind]int)
	}
	s.Records++
	s.counts[res.Classification.Kind]++
	if res.MissingChrom1 || res.MissingChrom2 {
		s.MissingChroms++
	}
}

// Count returns the number of records classified as k.
func (s *Summary) Count(k link.Kind) int {
	return s.counts[k]
}

// String method for Summary enables easy writing with the fmt package.
func (s *Summary) String() string {
	answer := new(strings.Builder)
	fmt.Fprintf(answer, "Records Annotated: %d\n", s.Records)
	for _, k := range link.Kinds {
		fmt.Fprintf(answer, "%s: %d\n", k.Label(), s.counts[k])
	}
	fmt.Fprintf(answer, "Records With Unannotated Chromosomes: %d", s.MissingChroms)
	return answer.String()
}
