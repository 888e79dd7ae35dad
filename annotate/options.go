package annotate

import (
	"github.com/dasnellings/svAnnotate/exons"
	"path/filepath"
	"strings"
)

// DefaultMargin is the tolerance, in bases, for a breakpoint to be considered at an exon boundary.
const DefaultMargin int = 6

// Naming convention of Socrates breakpoint files. DeriveName strips these to
// recover the sample name.
const (
	DefaultNamePrefix string = "results_Socrates_paired_"
	DefaultNameSuffix string = "_long_sc_l25_q5_m5_i95.txt.coords"
)

// Options controls the search and the report.
type Options struct {
	Margin   int
	Search   exons.SearchMode
	WithName bool   // emit Name as the leading column of every line
	Name     string // see DeriveName
}

// DefaultOptions returns the settings of the historical annotation script.
func DefaultOptions() Options {
	return Options{Margin: DefaultMargin, Search: exons.LocalScan}
}

// DeriveName returns the base name of path with prefix and suffix removed.
func DeriveName(path, prefix, suffix string) string {
	name := filepath.Base(path)
	name = strings.TrimPrefix(name, prefix)
	name = strings.TrimSuffix(name, suffix)
	return name
}
