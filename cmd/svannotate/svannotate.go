package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/svAnnotate/annotate"
	"github.com/dasnellings/svAnnotate/exons"
	"github.com/dasnellings/svAnnotate/genepred"
	"github.com/vertgenlab/gonomics/exception"
	"os"
	"strings"
	"text/tabwriter"
)

const version string = "0.1.0"
const gonomicsVersion string = "1.0.1-0.20240426183757-e6c6ab634c20"

type subcommand struct {
	name     string
	function func(args []string)
	blurb    string
}

// SubCommands contains all valid subcommands.
// New subcommands can be added to svannotate by adding a new entry to this array.
var SubCommands = []*subcommand{
	{"annotate", runAnnotate, "classify breakpoint pairs by nearby exon boundaries"},
	{"index", runIndex, "write the exon index built from a gene model as bed"},
	{"query", runQuery, "list exon boundaries near individual breakpoint ends"},
}

func usage() {
	s := new(strings.Builder)
	s.WriteString(
		"Program: svannotate (exon annotation of structural variant breakpoints)\n" +
			"Version: " + version + " (gonomics " + gonomicsVersion + ")\n" +
			"\nUsage:\tsvannotate <command> [options]\n\n" +
			"Commands:\n")

	w := tabwriter.NewWriter(s, 0, 8, 5, '\t', tabwriter.AlignRight)
	for i := range SubCommands {
		fmt.Fprintf(w, "\t%s\t%s\n", SubCommands[i].name, SubCommands[i].blurb)
	}
	w.Flush()

	s.WriteString(
		"\nGene model (all commands, exactly one required):\n" +
			"  -g refGene.txt    genePred table with leading bin column (gz ok)\n" +
			"  -gtf genes.gtf    GTF; exons named by transcript_id\n" +
			"  -keepLastExon     keep the last listed exon of each refGene transcript\n" +
			"\nA breakpoint end is near an exon when a '-' end is within -margin of the\n" +
			"exon start or a '+' end is within -margin of the exon end.\n" +
			"Run 'svannotate <command> -h' for command options.\n")
	fmt.Print(s.String())
}

// commandMap builds a map of possible subcommands keyed on the name of the subcommand
func commandMap() map[string]func(args []string) {
	m := make(map[string]func(args []string))
	for i := range SubCommands {
		m[SubCommands[i].name] = SubCommands[i].function
	}
	return m
}

func main() {
	flag.Usage = usage
	flag.Parse()

	// check if first argument is a valid subcommand
	command := commandMap()[flag.Arg(0)]

	// if no command is found, print the usage and return
	if command == nil {
		flag.Usage()
		return
	}

	// if command successfully found, pass in remaining arguments and execute
	command(flag.Args()[1:])
}

func errExit(err string) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// geneModel holds the flags shared by every subcommand that builds an exon index.
type geneModel struct {
	refGene      *string
	gtf          *string
	keepLastExon *bool
}

func geneModelFlags(fs *flag.FlagSet) geneModel {
	return geneModel{
		refGene:      fs.String("g", "", "Gene model in refGene (genePred with bin column) format. May be gzipped."),
		gtf:          fs.String("gtf", "", "Gene model in GTF format. Used instead of -g."),
		keepLastExon: fs.Bool("keepLastExon", false, "Keep the last listed exon of every refGene transcript. By default the last exon is dropped to match the historical annotation output."),
	}
}

func (g geneModel) check(fs *flag.FlagSet) {
	if (*g.refGene == "") == (*g.gtf == "") {
		fs.Usage()
		errExit("\nERROR: must specify exactly one gene model with -g or -gtf")
	}
}

func (g geneModel) load() *exons.Index {
	policy := genepred.LegacyDrop
	if *g.keepLastExon {
		policy = genepred.KeepAll
	}
	idx, err := annotate.LoadIndex(*g.refGene, *g.gtf, policy)
	exception.PanicOnErr(err)
	return idx
}
