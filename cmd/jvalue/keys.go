package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/calumari/jvalue"
)

// keysCommand lists the members of the object at a path in order, with their
// kinds.
type keysCommand struct {
	file *string
	path *string
}

func (cmd *keysCommand) run(*kingpin.ParseContext) error {
	store := jvalue.NewStore(afero.NewOsFs(), logger)
	if !store.Load(*cmd.file) {
		exitWithErr(fmt.Errorf("failed to load %s", *cmd.file))
	}
	v := store.Root().ObjectByPath(*cmd.path, false)
	if v.Kind() != jvalue.KindObject {
		exitWithErr(fmt.Errorf("%q is not an object", *cmd.path))
	}
	for i := range v.Len() {
		fmt.Printf("%s\t%s\n", v.KeyByIndex(i), color.CyanString(v.Object().ValueAt(i).Kind().String()))
	}
	return nil
}

func addKeysCommand(app *kingpin.Application) {
	cmd := &keysCommand{}
	c := app.Command("keys", "List object keys in order.").Action(cmd.run)
	cmd.file = c.Arg("file", "Settings file.").Required().ExistingFile()
	cmd.path = c.Arg("path", "Slash-separated object path.").Default("").String()
}
