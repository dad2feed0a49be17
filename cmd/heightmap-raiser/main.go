package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gruppe-adler/heightmap-raiser/internal/info"
	"github.com/gruppe-adler/heightmap-raiser/internal/preview"
	"github.com/gruppe-adler/heightmap-raiser/internal/raise"
	"github.com/spf13/pflag"
)

type command struct {
	name        string
	description string
	run         func(*pflag.FlagSet, []string) error
}

var subCommands []command

func init() {
	subCommands = []command{
		{"raise", "Reserve depth below a Unity heightmap (default).", raise.Run},
		{"info", "Print statistics of a heightmap.", info.Run},
		{"preview", "Render a heightmap as grayscale PNG images.", preview.Run},
		{"help", "Print this message.", func(*pflag.FlagSet, []string) error { printUsage(); return nil }},
	}
}

func printUsage() {
	fmt.Printf("USAGE:\n    %s [SUBCOMMAND] [SUBCOMMAND FLAGS]\n", os.Args[0])
	fmt.Printf("    %s -i terrain.raw -o new_terrain.raw -b 16 -a 350 -d 35\n\n", os.Args[0])
	fmt.Print("SUBCOMMANDS: \n")

	for i := 0; i < len(subCommands); i++ {
		name := subCommands[i].name

		fmt.Printf("%12s    %s\n", name, subCommands[i].description)
	}

	fmt.Printf("\nUse -h as SUBCOMMAND FLAG to print help for each subcommand.\n\n")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches args to a subcommand and returns the process exit code
func run(args []string) int {

	if len(args) < 1 {
		fmt.Printf("\nERROR: No subcommand was provided.\n\n")
		printUsage()
		return 1
	}

	cmd := args[0]
	cmdArgs := args[1:]

	// flags without a subcommand run raise
	if strings.HasPrefix(cmd, "-") {
		cmd = "raise"
		cmdArgs = args
	}

	for i := 0; i < len(subCommands); i++ {
		if subCommands[i].name == cmd {
			set := pflag.NewFlagSet(cmd, pflag.ContinueOnError)
			if err := subCommands[i].run(set, cmdArgs); err != nil {
				log.Println("Error:", err)
				return 1
			}
			return 0
		}
	}

	fmt.Printf("\nERROR: Subcommand '%s' was not found.\n\n", cmd)
	printUsage()
	return 1
}
