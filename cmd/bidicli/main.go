/*
Command bidicli is an interactive tool to explore the UAX#9 bidi algorithm.

Every line of input is resolved as a paragraph of text. The CLI prints bidi
classes and resolved levels for each character, followed by the text in visual
order and its directional fragments.

Commands are

   :ltr    force left-to-right paragraphs
   :rtl    force right-to-left paragraphs
   :auto   detect the paragraph direction from the text
   :test   toggle test mode (UPPERCASE is R)
   :quit   leave the CLI

Quit with <ctrl>D as well.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/uax9/bidi"
	"github.com/pterm/pterm"
)

// tracer traces with key 'uax.bidi'
func tracer() tracing.Trace {
	return tracing.Select("uax.bidi")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.uax.bidi":  "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	dirflag := flag.String("dir", "auto", "Paragraph direction [ltr|rtl|auto|env]")
	testing := flag.Bool("test", false, "Start in test mode (UPPERCASE is R)")
	flag.Parse()
	pterm.Info.Println("Welcome to the UAX#9 bidi CLI") // colored welcome message
	//
	intp := &Intp{testing: *testing}
	if err := intp.setDirection(*dirflag); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	//
	// set up REPL
	repl, err := readline.New("bidi > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp.repl = repl
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(4)
	}
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl      *readline.Instance
	direction bidi.Direction
	testing   bool
}

func (intp *Intp) String() string {
	mode := ""
	if intp.testing {
		mode = ", test mode"
	}
	return fmt.Sprintf("( direction=%s%s )", intp.direction, mode)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			quit, err := intp.execute(strings.TrimSpace(line[1:]))
			if err != nil {
				pterm.Error.Println(err)
				continue
			}
			if quit {
				break
			}
			continue
		}
		intp.resolve(line)
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(cmd string) (bool, error) {
	switch cmd {
	case "quit", "q":
		return true, nil
	case "test":
		intp.testing = !intp.testing
		return false, nil
	}
	return false, intp.setDirection(cmd)
}

func (intp *Intp) setDirection(dir string) error {
	switch dir {
	case "ltr":
		intp.direction = bidi.LeftToRight
	case "rtl":
		intp.direction = bidi.RightToLeft
	case "auto":
		intp.direction = bidi.Neutral
	case "env":
		intp.direction = bidi.EnvironmentDirection()
	default:
		return fmt.Errorf("unknown command or direction: %q", dir)
	}
	return nil
}

func (intp *Intp) resolve(line string) {
	p := bidi.ResolveParagraph(line, bidi.DefaultDirection(intp.direction), bidi.Testing(intp.testing))
	tracer().Debugf("levels: %s", p)
	printCharacters(p)
	printVisual(p)
}
