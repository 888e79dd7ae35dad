package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/svAnnotate/annotate"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"log"
)

func indexUsage(indexFlags *flag.FlagSet) {
	fmt.Print(
		"index - build the exon index from a gene model and write it as bed (name = transcript:exonNumber)\n\n" +
			"Usage:\n" +
			"  svannotate index [options] -g refGene.txt > exons.bed\n\n" +
			"Options:\n")
	indexFlags.PrintDefaults()
}

func runIndex(args []string) {
	var err error
	indexFlags := flag.NewFlagSet("index", flag.ExitOnError)

	model := geneModelFlags(indexFlags)
	output := indexFlags.String("o", "stdout", "Output bed file.")

	err = indexFlags.Parse(args)
	exception.PanicOnErr(err)
	indexFlags.Usage = func() { indexUsage(indexFlags) }

	model.check(indexFlags)

	idx := model.load()
	out := fileio.EasyCreate(*output)
	annotate.WriteIndexBed(out, idx)
	err = out.Close()
	exception.PanicOnErr(err)

	for _, chr := range idx.Chroms() {
		if idx.Len(chr) == 0 {
			log.Printf("WARNING: %s has transcripts but no exons after the exon list was paired.", chr)
		}
	}
}
