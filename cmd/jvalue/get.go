package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/spf13/afero"

	"github.com/calumari/jvalue"
)

// getCommand prints the value at a '/'-separated path.
type getCommand struct {
	file *string
	path *string
}

func (cmd *getCommand) run(*kingpin.ParseContext) error {
	store := jvalue.NewStore(afero.NewOsFs(), logger)
	if !store.Load(*cmd.file) {
		exitWithErr(fmt.Errorf("failed to load %s", *cmd.file))
	}
	v := store.Root().ObjectByPath(*cmd.path, false)
	if v == nil {
		fmt.Fprintf(os.Stderr, "%s: no value at %q\n", *cmd.file, *cmd.path)
		os.Exit(1)
	}
	fmt.Println(render(v))
	return nil
}

// render prints strings bare and everything else as JSON.
func render(v *jvalue.Value) string {
	switch v.Kind() {
	case jvalue.KindString:
		return v.Str()
	case jvalue.KindObject, jvalue.KindArray:
		return string(jvalue.MarshalIndent(v))
	}
	return v.String()
}

func addGetCommand(app *kingpin.Application) {
	cmd := &getCommand{}
	c := app.Command("get", "Print the value at a path.").Action(cmd.run)
	cmd.file = c.Arg("file", "Settings file.").Required().ExistingFile()
	cmd.path = c.Arg("path", "Slash-separated object path.").Default("").String()
}
