/*
Command arabshape shapes Arabic text for renderers without a shaping engine.

Usage:

	arabshape [flags] [text ...]

Without text arguments a sample sentence is shaped. With flag -i arabshape
reads lines interactively and shapes each of them.

Flags:

	-dir       output order: rtl (visual, default), ltr (logical) or auto
	-escapes   print the result as \uXXXX escapes as well
	-parallel  shape words concurrently
	-describe  list the code-points of the input
	-trace     trace level [Debug|Info|Error]
	-i         interactive mode

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/arabshape"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/bidi"
)

// tracer traces with key 'arabshape'
func tracer() tracing.Trace {
	return tracing.Select("arabshape")
}

const sample = "بسم الله الرحمن الرحيم"

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	dir := flag.String("dir", "rtl", "Output order [rtl|ltr|auto]")
	escapes := flag.Bool("escapes", false, "Print \\uXXXX escapes of the result")
	parallel := flag.Bool("parallel", false, "Shape words concurrently")
	describe := flag.Bool("describe", false, "List the code-points of the input")
	interactive := flag.Bool("i", false, "Interactive mode")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"trace.arabshape":         *tlevel,
		"trace.arabshape.shaping": *tlevel,
		"trace.arabshape.segment": *tlevel,
		arabshape.KeyDirection:    *dir,
		arabshape.KeyParallel:     fmt.Sprintf("%v", *parallel),
	}
	if *dir == "auto" {
		ctx := arabshape.ContextFromEnvironment()
		conf[arabshape.KeyDirection] = "rtl"
		if ctx.Direction() == bidi.LeftToRight {
			conf[arabshape.KeyDirection] = "ltr"
		}
		pterm.Info.Printf("locale %s, using %s order\n", ctx.Locale, conf[arabshape.KeyDirection])
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	opts, err := arabshape.OptionsFromConfig(conf)
	if err != nil {
		pterm.Error.Println(err.Error())
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	app := &App{
		shaper:   arabshape.New(opts),
		escapes:  *escapes,
		describe: *describe,
	}
	if *interactive {
		repl, err := readline.New("arabshape > ")
		if err != nil {
			pterm.Error.Println(err.Error())
			tracer().Errorf("%v", err)
			os.Exit(3)
		}
		defer repl.Close()
		app.repl = repl
		pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
		app.REPL()
		return
	}
	text := strings.Join(flag.Args(), " ")
	if text == "" {
		text = sample
	}
	app.shape(text)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// App shapes lines of text and prints the results.
type App struct {
	shaper   *arabshape.Transformer
	repl     *readline.Instance
	escapes  bool
	describe bool
}

// REPL reads lines until EOF and shapes each of them.
func (app *App) REPL() {
	for {
		line, err := app.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		app.shape(line)
	}
	pterm.Info.Println("Good bye!")
}

func (app *App) shape(text string) {
	if app.describe {
		pterm.Println(arabshape.Describe(text))
	}
	shaped := strings.TrimSpace(app.shaper.Transform(text))
	pterm.Println(shaped)
	if app.escapes {
		pterm.Println(arabshape.UnicodeEscapes(shaped))
	}
}
