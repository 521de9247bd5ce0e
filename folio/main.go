package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/etnz/folio/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional, it only provides defaults for the global flags.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	name := path.Base(os.Args[0])
	cmd.SetFlags(flag.CommandLine)
	// Exits when invoked by the shell for completion.
	cmd.Completion(flag.CommandLine).Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if flag.NArg() > 0 && !isRegistered(commander, flag.Arg(0)) {
		if found, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func isRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}
