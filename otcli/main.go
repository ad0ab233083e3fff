/*
Command otcli is an interactive inspector for the metrics, glyphs, kerning
and layout of a scalable font.

	otcli -font <path|go-regular|go-mono|go-bold> [-index n] [-trace level] [-nfc]

Type 'help' at the prompt for a list of commands.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontview"
	"github.com/npillmayer/fontview/internal/fontload"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontview.cli'
func tracer() tracing.Trace {
	return tracing.Select("fontview.cli")
}

// defaultPixels is the em size used when a command does not name one.
const defaultPixels = 16

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.fontview.cli":  "Info",
		"trace.fontview":      "Error",
		"trace.fontview.sfnt": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", fontload.GoRegular, "Font to load (file path or bundled font name)")
	index := flag.Uint("index", 0, "Index of font within a font collection")
	nfc := flag.Bool("nfc", false, "Normalize layout text to NFC before layout")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)      // will set the correct level later
	pterm.Info.Println("Welcome to the fontview CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("font > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, normalize: *nfc}
	//
	// load font to use
	if err := intp.loadFont(*fontname, uint32(*index)); err != nil { // font name provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
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
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
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
	font      fontview.Font
	repl      *readline.Instance
	normalize bool
}

func (intp *Intp) String() string {
	if intp == nil || !intp.font.IsValid() {
		return "()"
	}
	return fmt.Sprintf("( %s )", intp.font.Name())
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		err, quit := intp.execute(op)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single parsed command line.
type Op struct {
	code   int
	arg    string
	pixels float32
}

const (
	// op-codes QUIT and HELP will not have arguments
	QUIT int = iota
	HELP
	// op-codes below may have arguments
	METRICS
	GLYPH
	KERN
	LAYOUT
)

var opMap = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"metrics": METRICS,
	"glyph":   GLYPH,
	"kern":    KERN,
	"layout":  LAYOUT,
}

var opNames = []string{
	"quit",
	"help",
	"metrics",
	"glyph",
	"kern",
	"layout",
}

// parseCommand splits a line of the form "cmd[:arg][:px]".
// Unknown commands are turned into a HELP command.
func parseCommand(line string) (*Op, error) {
	name, rest, _ := strings.Cut(line, ":")
	code, ok := opMap[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return &Op{code: HELP}, nil
	}
	op := &Op{code: code, pixels: defaultPixels}
	switch code {
	case QUIT, HELP:
		op.arg = rest
		return op, nil
	case METRICS: // metrics takes a size only
		if rest != "" {
			px, err := parsePixels(rest)
			if err != nil {
				return nil, err
			}
			op.pixels = px
		}
		return op, nil
	}
	if i := strings.LastIndexByte(rest, ':'); i >= 0 {
		if px, err := parsePixels(rest[i+1:]); err == nil {
			op.pixels = px
			rest = rest[:i]
		}
	}
	op.arg = rest
	tracer().Debugf("parsed command: %s %q @ %.1fpx", opNames[code], op.arg, op.pixels)
	return op, nil
}

func parsePixels(s string) (float32, error) {
	px, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("size not numeric: %q", s)
	}
	if px <= 0 {
		return 0, fmt.Errorf("size must be positive: %v", px)
	}
	return float32(px), nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:    quitOp,
	HELP:    helpOp,
	METRICS: metricsOp,
	GLYPH:   glyphOp,
	KERN:    kernOp,
	LAYOUT:  layoutOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		return fmt.Errorf("unknown command code: %d", op.code), false
	}
	return f(intp, op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	return nil, true
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string, index uint32) (err error) {
	intp.font, err = loadFont(fontname, index)
	if err == nil {
		pterm.Printf("loaded %v\n", intp.font)
	}
	return
}

func loadFont(fontname string, index uint32) (fontview.Font, error) {
	if fontname == "" {
		return fontview.Font{}, errors.New("no font given")
	}
	f, err := fontload.LoadOpenTypeFont(fontname)
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", fontname, err)
		return fontview.Font{}, err
	}
	tracer().Infof("loaded SFNT font = %s", f.Fontname)
	font, err := fontview.FromOwnedBufferAndIndex(f.Binary, index)
	if err != nil {
		tracer().Errorf("cannot decode font %s: %s", fontname, err)
		return fontview.Font{}, err
	}
	return font, nil
}
