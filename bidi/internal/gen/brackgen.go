// Command gen generates the table of paired brackets for package bidi from
// BidiBrackets.txt of the Unicode Character Database.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/uax9/internal/testdata"
	"github.com/npillmayer/uax9/internal/ucdparse"
)

func tracer() tracing.Trace {
	return tracing.Select("uax.bidi")
}

func main() {
	tlevel := flag.String("trace", "I", "Trace level [D|I|E]")
	inf := flag.String("i", "", "Input file name, default from internal/testdata")
	outf := flag.String("o", "_bracketpairs.go", "Output file name")
	pkg := flag.String("pkg", "main", "Package name to use in output file")
	flag.Parse()
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.uax.bidi":  "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintln(os.Stderr, "error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	setTraceLevel(*tlevel)
	tracer().Infof("Generating Unicode bracket pairs")
	pairs, err := readBrackets(*inf)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(1)
	}
	tracer().Infof("Read %d bracket pairs", len(pairs))
	if len(pairs) == 0 {
		tracer().Errorf("Did not read any bracket pairs, exiting")
		os.Exit(1)
	}
	f, err := os.Create(*outf)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	defer f.Close()
	if err = writeBrackets(f, *pkg, pairs); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
}

type bracketPair struct {
	o rune
	c rune
}

func readBrackets(filename string) ([]bracketPair, error) {
	var in io.ReadCloser
	var err error
	if filename == "" {
		in, err = testdata.UCDReader("BidiBrackets.txt")
	} else {
		in, err = os.Open(filename)
	}
	if err != nil {
		return nil, err
	}
	defer in.Close()
	tracer().Infof("Found file BidiBrackets.txt ...")
	bracketList := make([]bracketPair, 0, 65)
	var cerr error
	err = ucdparse.Parse(in, func(t *ucdparse.Token) {
		if t.Field(2) != "o" || cerr != nil {
			return
		}
		pair := bracketPair{}
		pair.o, _ = t.Range()
		pair.c, cerr = ucdparse.ParseHexRune(t.Field(1))
		bracketList = append(bracketList, pair)
		tracer().Debugf("%s", t.Comment)
	})
	if err == nil {
		err = cerr
	}
	tracer().Debugf("done.")
	return bracketList, err
}

func writeBrackets(w io.Writer, pkg string, pairs []bracketPair) error {
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "// Code generated by bidi/internal/gen from BidiBrackets.txt. DO NOT EDIT.\n\n")
	fmt.Fprintf(out, "package %s\n\n", pkg)
	fmt.Fprintf(out, "var uax9BracketPairs = []bracketPair{\n")
	for _, p := range pairs {
		fmt.Fprintf(out, "\t{o: %+q, c: %+q},\n", p.o, p.c)
	}
	fmt.Fprintf(out, "}\n")
	return out.Flush()
}

func setTraceLevel(l string) {
	switch l {
	case "D":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "E":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().SetTraceLevel(tracing.LevelInfo)
	}
}
