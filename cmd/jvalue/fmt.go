package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/calumari/jvalue"
)

// fmtCommand re-encodes settings files, pretty unless --compact is given.
type fmtCommand struct {
	files   *[]string
	compact *bool
	write   *bool
}

func (cmd *fmtCommand) run(*kingpin.ParseContext) error {
	fs := afero.NewOsFs()
	for _, name := range *cmd.files {
		data, err := afero.ReadFile(fs, name)
		if err != nil {
			exitWithErr(fmt.Errorf("failed to read file: %w", err))
		}
		v, err := jvalue.Unmarshal(data)
		if err != nil {
			reportSyntaxError(name, err)
			os.Exit(1)
		}
		out := jvalue.Marshal(v, jvalue.EncodePretty(!*cmd.compact))
		if *cmd.write {
			if err := afero.WriteFile(fs, name, append(out, '\n'), 0o644); err != nil {
				exitWithErr(fmt.Errorf("failed to write file: %w", err))
			}
			continue
		}
		fmt.Println(string(out))
	}
	return nil
}

// reportSyntaxError prints the error position and the offending line with a
// caret under the column.
func reportSyntaxError(name string, err error) {
	var se *jvalue.SyntaxError
	if !errors.As(err, &se) {
		exitWithErr(err)
	}
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(os.Stderr, "%s %s:%d:%d: %s\n", red("error:"), name, se.Line, se.Column, se.Msg)
	fmt.Fprintf(os.Stderr, "    %s\n", color.YellowString("%q", se.Context))
}

func addFmtCommand(app *kingpin.Application) {
	cmd := &fmtCommand{}
	c := app.Command("fmt", "Re-encode settings files.").Action(cmd.run)
	cmd.compact = c.Flag("compact", "Emit compact output.").Bool()
	cmd.write = c.Flag("write", "Write the result back to the file instead of stdout.").Short('w').Bool()
	cmd.files = c.Arg("file", "Files to format.").Required().ExistingFiles()
}
