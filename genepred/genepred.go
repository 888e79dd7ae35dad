// Package genepred reads refGene-style genePred tables and loads their exons
// into an exons.Index.
package genepred

import (
	"fmt"
	"github.com/dasnellings/svAnnotate/exons"
	"github.com/vertgenlab/gonomics/fileio"
	"strconv"
	"strings"
)

// Column positions in a refGene table (0-based, refGene carries a leading bin column).
const (
	Bin int = iota
	Name
	Chrom
	Strand
	TxStart
	TxEnd
	CdsStart
	CdsEnd
	ExonCount
	ExonStarts
	ExonEnds
)

// ExonPolicy decides how the comma-delimited exon lists are turned into exon pairs.
type ExonPolicy byte

const (
	// LegacyDrop removes trailing empty tokens and then drops the final listed
	// start and end, discarding the last exon of every transcript. This matches
	// the output of the historical annotation script.
	LegacyDrop ExonPolicy = iota

	// KeepAll removes only trailing empty tokens and keeps every listed exon.
	KeepAll
)

// Transcript is one row of a genePred table.
type Transcript struct {
	Name   string
	Chrom  string
	Starts []int
	Ends   []int
}

// ParseError reports a row of a genePred table that could not be parsed.
type ParseError struct {
	File  string
	Line  int // 1-based
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s line %d: malformed %s '%s': %v", e.File, e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var errTooFewColumns = fmt.Errorf("expected at least %d columns", ExonEnds+1)

// ParseLine parses a single whitespace-delimited genePred row. The returned error,
// if any, is a *ParseError with File and Line left for the caller to fill.
func ParseLine(line string, policy ExonPolicy) (Transcript, error) {
	var ans Transcript
	var err error
	words := strings.Fields(line)
	if len(words) <= ExonEnds {
		return ans, &ParseError{Field: "row", Value: line, Err: errTooFewColumns}
	}
	ans.Name = words[Name]
	ans.Chrom = words[Chrom]
	ans.Starts, err = parseCoordList(words[ExonStarts], "exonStarts", policy)
	if err != nil {
		return ans, err
	}
	ans.Ends, err = parseCoordList(words[ExonEnds], "exonEnds", policy)
	return ans, err
}

func parseCoordList(s, field string, policy ExonPolicy) ([]int, error) {
	var err error
	tokens := strings.Split(s, ",")
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	if policy == LegacyDrop && len(tokens) > 0 {
		tokens = tokens[:len(tokens)-1]
	}
	ans := make([]int, len(tokens))
	for i := range tokens {
		ans[i], err = strconv.Atoi(tokens[i])
		if err != nil {
			return nil, &ParseError{Field: field, Value: s, Err: err}
		}
	}
	return ans, nil
}

// Read parses every row of a genePred file. Lines starting with '#' and blank
// lines are skipped. Any malformed row aborts the read.
func Read(filename string, policy ExonPolicy) ([]Transcript, error) {
	var answer []Transcript
	var curr Transcript
	var line string
	var done bool
	var lineNum int
	var err error
	file := fileio.EasyOpen(filename)
	for line, done = fileio.EasyNextLine(file); !done; line, done = fileio.EasyNextLine(file) {
		lineNum++
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		curr, err = ParseLine(line, policy)
		if err != nil {
			file.Close()
			return nil, withLocation(err, filename, lineNum)
		}
		answer = append(answer, curr)
	}
	err = file.Close()
	return answer, err
}

func withLocation(err error, filename string, lineNum int) error {
	if pe, ok := err.(*ParseError); ok {
		pe.File = filename
		pe.Line = lineNum
		return pe
	}
	return fmt.Errorf("%s line %d: %w", filename, lineNum, err)
}

// AddAll adds every transcript to b in table order.
func AddAll(b *exons.Builder, transcripts []Transcript) {
	for i := range transcripts {
		b.AddTranscript(transcripts[i].Chrom, transcripts[i].Name, transcripts[i].Starts, transcripts[i].Ends)
	}
}

// BuildIndex reads a genePred file and returns the finished exon index. No index
// is returned if any row is malformed.
func BuildIndex(filename string, policy ExonPolicy) (*exons.Index, error) {
	transcripts, err := Read(filename, policy)
	if err != nil {
		return nil, err
	}
	b := exons.NewBuilder()
	AddAll(b, transcripts)
	return b.Build(), nil
}
