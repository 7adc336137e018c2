// Command jvalue formats, queries and edits JSON settings files while keeping
// member order intact.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/mattn/go-isatty"
)

var logger log.Logger

func main() {
	app := kingpin.New("jvalue", "Format, query and edit order-preserving JSON settings files.")
	verbose := app.Flag("verbose", "Log debug output.").Short('v').Bool()
	app.PreAction(func(*kingpin.ParseContext) error {
		logger = newLogger(*verbose)
		return nil
	})

	addFmtCommand(app)
	addGetCommand(app)
	addSetCommand(app)
	addKeysCommand(app)

	color.NoColor = !isatty.IsTerminal(os.Stderr.Fd())
	kingpin.MustParse(app.Parse(os.Args[1:]))
}

func newLogger(verbose bool) log.Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if verbose {
		l = level.NewFilter(l, level.AllowDebug())
	} else {
		l = level.NewFilter(l, level.AllowWarn())
	}
	return log.With(l, "ts", log.DefaultTimestampUTC)
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, color.New(color.FgRed, color.Bold).Sprint("error:"), err)
	os.Exit(1)
}
