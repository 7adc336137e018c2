package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"

	"github.com/calumari/jvalue"
)

// setCommand stores a value at a path, creating intermediate objects, and
// saves the file.
type setCommand struct {
	file    *string
	path    *string
	value   *string
	json    *bool
	compact *bool
}

func (cmd *setCommand) run(*kingpin.ParseContext) error {
	fs := afero.NewOsFs()
	store := jvalue.NewStore(fs, logger)
	if exists, _ := afero.Exists(fs, *cmd.file); exists && !store.Load(*cmd.file) {
		exitWithErr(fmt.Errorf("failed to load %s", *cmd.file))
	}

	target := store.Root().ObjectByPath(*cmd.path, true)
	if *cmd.json {
		v, err := jvalue.Parse(*cmd.value)
		if err != nil {
			exitWithErr(fmt.Errorf("invalid value: %w", err))
		}
		if err := target.Set(v); err != nil {
			exitWithErr(err)
		}
	} else {
		target.SetString(*cmd.value)
	}
	store.Root().SetDirty(true)

	if err := store.Save(*cmd.file, !*cmd.compact); err != nil {
		exitWithErr(err)
	}
	level.Debug(logger).Log("msg", "saved settings", "path", *cmd.file, "key", *cmd.path)
	return nil
}

func addSetCommand(app *kingpin.Application) {
	cmd := &setCommand{}
	c := app.Command("set", "Set the value at a path and save the file.").Action(cmd.run)
	cmd.json = c.Flag("json", "Parse the value as JSON instead of storing it as a string.").Bool()
	cmd.compact = c.Flag("compact", "Save compact output.").Bool()
	cmd.file = c.Arg("file", "Settings file; created if missing.").Required().String()
	cmd.path = c.Arg("path", "Slash-separated object path.").Required().String()
	cmd.value = c.Arg("value", "Value to store.").Required().String()
}
