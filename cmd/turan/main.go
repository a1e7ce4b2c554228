package main

import (
	"flag"
	"io"
	"os"

	"github.com/plan-systems/klog"
	"github.com/raphaelyuster/turan-inducibility/libturan"
	"github.com/raphaelyuster/turan-inducibility/turan"
)

var (
	gGrid    = flag.String("grid", libturan.DefaultGrid, "T(s,r) pairs to tabulate, e.g. \"T(3..14, 2..); T(20, 4)\"")
	gLaTeX   = flag.Bool("latex", false, "print LaTeX tabular rows instead of plain text")
	gExact   = flag.Bool("exact", false, "decide the Brown-Sidorenko condition and f(l) > 1 with exact rationals")
	gCheck   = flag.Bool("check", false, "warn wherever float64 and exact evaluation disagree")
	gRefs    = flag.Bool("refs", false, "print the references cited by the table")
	gKnown   = flag.Bool("known", false, "omit rows whose l is unknown")
	gWorkers = flag.Int("workers", 0, "number of compute workers (0 denotes one per CPU)")
	gREPL    = flag.Bool("repl", false, "start a gpython REPL with the _turan module")
)

func main() {
	klog.InitFlags(nil)
	flag.Set("logtostderr", "true")
	flag.Set("v", "1")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Parse()

	var err error
	pathname := flag.Arg(0)
	if *gREPL || len(pathname) > 0 {
		err = go_gpython(pathname)
	} else {
		err = renderTable(os.Stdout, tableOptsFromFlags())
	}

	if err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func tableOptsFromFlags() libturan.TableOpts {
	opts := libturan.DefaultTableOpts
	opts.Grid = *gGrid
	opts.Compute.ExactInequalities = *gExact
	opts.Compute.Workers = *gWorkers
	opts.Print.LaTeX = *gLaTeX
	opts.Select.KnownOnly = *gKnown
	opts.Check = *gCheck
	return opts
}

func renderTable(out io.Writer, opts libturan.TableOpts) error {
	results, err := libturan.RenderTable(out, opts)
	if err != nil {
		return err
	}
	klog.V(1).Infof("%d rows", len(results))

	if *gRefs {
		io.WriteString(out, "\n")
		bib := libturan.CiteBibliography(results)
		return bib.WriteReferences(out, turan.PrintOpts{LaTeX: opts.Print.LaTeX})
	}
	return nil
}
