package breakpoint

import (
	"fmt"
	"github.com/dasnellings/svAnnotate/exons"
	"github.com/vertgenlab/gonomics/fileio"
	"strconv"
	"strings"
)

// Column positions of the two breakpoint ends. Any further columns are payload.
const (
	Chrom1 int = iota
	Pos1
	Dir1
	Chrom2
	Pos2
	Dir2
	numRequired
)

// End is one side of a candidate structural variant junction.
type End struct {
	Chrom string
	Pos   int
	Dir   exons.Direction // exons.Plus or exons.Minus; any other value finds no exons
}

// String method for End enables easy writing with the fmt package.
func (e End) String() string {
	return fmt.Sprintf("%s:%d:%s", e.Chrom, e.Pos, e.Dir)
}

// Record is one row of a breakpoint coordinate file. Fields holds every column
// of the row, payload included, exactly as read.
type Record struct {
	End1   End
	End2   End
	Fields []string
	Line   int // 1-based line number in the source file
}

// ParseError reports a breakpoint row that could not be parsed.
type ParseError struct {
	File  string
	Line  int
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

var errTooFewColumns = fmt.Errorf("expected at least %d columns", numRequired)

// ParseLine parses one whitespace-delimited breakpoint row.
func ParseLine(line string) (Record, error) {
	var ans Record
	var err error
	ans.Fields = strings.Fields(line)
	if len(ans.Fields) < numRequired {
		return ans, &ParseError{Field: "row", Value: line, Err: errTooFewColumns}
	}
	ans.End1, err = parseEnd(ans.Fields[Chrom1], ans.Fields[Pos1], ans.Fields[Dir1], "1")
	if err != nil {
		return ans, err
	}
	ans.End2, err = parseEnd(ans.Fields[Chrom2], ans.Fields[Pos2], ans.Fields[Dir2], "2")
	return ans, err
}

// ParseEnd parses a chr:pos:dir string such as chr1:1500:+.
func ParseEnd(s string) (End, error) {
	words := strings.Split(s, ":")
	if len(words) != 3 {
		return End{}, &ParseError{Field: "end", Value: s, Err: fmt.Errorf("expected chr:pos:dir")}
	}
	return parseEnd(words[0], words[1], words[2], "")
}

func parseEnd(chr, pos, dir, side string) (End, error) {
	var ans End
	var err error
	ans.Chrom = chr
	ans.Pos, err = strconv.Atoi(pos)
	if err != nil {
		return ans, &ParseError{Field: "position" + side, Value: pos, Err: err}
	}
	ans.Dir, err = exons.ParseDirection(dir)
	if err != nil {
		return ans, &ParseError{Field: "direction" + side, Value: dir, Err: err}
	}
	return ans, nil
}

// Read parses every row of a breakpoint file. Lines starting with '#' and blank
// lines are skipped. The first malformed row aborts the read.
func Read(filename string) ([]Record, error) {
	var answer []Record
	var curr Record
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
		curr, err = ParseLine(line)
		if err != nil {
			file.Close()
			if pe, ok := err.(*ParseError); ok {
				pe.File = filename
				pe.Line = lineNum
			}
			return nil, err
		}
		curr.Line = lineNum
		answer = append(answer, curr)
	}
	err = file.Close()
	return answer, err
}

// GoSendToChan streams records over a channel in slice order.
func GoSendToChan(r []Record) <-chan Record {
	ans := make(chan Record, 100)
	go func() {
		for i := range r {
			ans <- r[i]
		}
		close(ans)
	}()
	return ans
}
