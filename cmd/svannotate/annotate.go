package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/svAnnotate/annotate"
	"github.com/dasnellings/svAnnotate/exons"
	"github.com/pkg/profile"
	"github.com/vertgenlab/gonomics/exception"
	"log"
	"time"
)

func annotateUsage(annotateFlags *flag.FlagSet) {
	fmt.Print(
		"annotate - classify each breakpoint pair as an exon-exon junction, a partial gene link, a link between two different genes, or no gene connection\n\n" +
			"Usage:\n" +
			"  svannotate annotate [options] -g refGene.txt breakpoints.coords > annotated.txt\n\n" +
			"Breakpoint files are whitespace delimited: chr1 pos1 dir1 chr2 pos2 dir2 [extra columns...]\n\n" +
			"Options:\n")
	annotateFlags.PrintDefaults()
}

func runAnnotate(args []string) {
	var err error
	annotateFlags := flag.NewFlagSet("annotate", flag.ExitOnError)

	model := geneModelFlags(annotateFlags)
	output := annotateFlags.String("o", "stdout", "Output annotation file.")
	bedOutput := annotateFlags.String("bed", "", "Output a bed file with every exon found near a breakpoint end.")
	margin := annotateFlags.Int("margin", annotate.DefaultMargin, "Distance in bases from an exon boundary for a breakpoint to be considered at that boundary.")
	search := annotateFlags.String("search", "local", "Neighbor search. 'local' expands from the nearest exon and stops at the first miss (legacy behavior). 'range' reports every exon boundary within -margin.")
	namePrefix := annotateFlags.String("namePrefix", annotate.DefaultNamePrefix, "Prefix removed from the input file name to form the name column.")
	nameSuffix := annotateFlags.String("nameSuffix", annotate.DefaultNameSuffix, "Suffix removed from the input file name to form the name column.")
	noName := annotateFlags.Bool("noName", false, "Do not write the name column.")
	threads := annotateFlags.Int("threads", 1, "Number of threads to use for annotation. Output order always matches input order.")
	cpuprofile := annotateFlags.Bool("cpuprofile", false, "write cpu profile")
	memprofile := annotateFlags.Bool("memprofile", false, "write memory profile")

	err = annotateFlags.Parse(args)
	exception.PanicOnErr(err)
	annotateFlags.Usage = func() { annotateUsage(annotateFlags) }

	if annotateFlags.NArg() == 0 {
		annotateFlags.Usage()
		return
	}
	input := annotateFlags.Arg(0)
	if annotateFlags.NArg() > 1 {
		log.Println("WARNING: only the first breakpoint file is annotated. Ignoring:", annotateFlags.Args()[1:])
	}

	model.check(annotateFlags)

	if *memprofile && *cpuprofile {
		annotateFlags.Usage()
		errExit("\nERROR: -memprofile and -cpuprofile are mutually exclusive")
	}
	if *memprofile {
		defer profile.Start(profile.MemProfile).Stop()
	}
	if *cpuprofile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	if *margin < 0 {
		annotateFlags.Usage()
		errExit("\nERROR: -margin must be >= 0")
	}

	if *threads < 1 {
		annotateFlags.Usage()
		errExit("\nERROR: threads must be >= 1")
	}

	opts := annotate.DefaultOptions()
	opts.Margin = *margin
	opts.Search, err = exons.ParseSearchMode(*search)
	if err != nil {
		annotateFlags.Usage()
		errExit("\nERROR: " + err.Error())
	}
	opts.WithName = !*noName
	opts.Name = annotate.DeriveName(input, *namePrefix, *nameSuffix)

	startTime := time.Now()
	idx := model.load()
	log.Printf("Indexed %d exons on %d chromosomes in %s", idx.Size(), len(idx.Chroms()), time.Since(startTime).Round(time.Millisecond))

	summary, err := annotate.Run(input, *output, idx, opts, *threads, *bedOutput)
	exception.PanicOnErr(err)

	log.Printf("Successfully Completed\n%s\nTotal Runtime: %s\n", summary.String(), time.Since(startTime).Round(time.Millisecond))
}
