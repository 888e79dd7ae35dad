package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/svAnnotate/annotate"
	"github.com/dasnellings/svAnnotate/breakpoint"
	"github.com/dasnellings/svAnnotate/exons"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

func queryUsage(queryFlags *flag.FlagSet) {
	fmt.Print(
		"query - list the exons whose start (- ends) or end (+ ends) is within -margin of each breakpoint end\n\n" +
			"Usage:\n" +
			"  svannotate query [options] -g refGene.txt chr1:15000:+ chr2:3000:- ...\n\n" +
			"Options:\n")
	queryFlags.PrintDefaults()
}

func runQuery(args []string) {
	var err error
	queryFlags := flag.NewFlagSet("query", flag.ExitOnError)

	model := geneModelFlags(queryFlags)
	output := queryFlags.String("o", "stdout", "Output file.")
	margin := queryFlags.Int("margin", annotate.DefaultMargin, "Distance in bases from an exon boundary for a breakpoint to be considered at that boundary.")
	search := queryFlags.String("search", "local", "Neighbor search, 'local' or 'range'. See 'svannotate annotate'.")

	err = queryFlags.Parse(args)
	exception.PanicOnErr(err)
	queryFlags.Usage = func() { queryUsage(queryFlags) }

	if queryFlags.NArg() == 0 {
		queryFlags.Usage()
		return
	}
	model.check(queryFlags)

	mode, err := exons.ParseSearchMode(*search)
	if err != nil {
		queryFlags.Usage()
		errExit("\nERROR: " + err.Error())
	}

	var ends []breakpoint.End
	for _, a := range queryFlags.Args() {
		e, err := breakpoint.ParseEnd(a)
		exception.PanicOnErr(err)
		ends = append(ends, e)
	}

	idx := model.load()
	out := fileio.EasyCreate(*output)
	for _, e := range ends {
		fmt.Fprintf(out, "%s\t%s\n", e, exons.ListString(idx.FindNeighbors(e.Chrom, e.Pos, e.Dir, *margin, mode)))
	}
	err = out.Close()
	exception.PanicOnErr(err)
}
