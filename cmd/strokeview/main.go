package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"strokeview/internal/commands"
)

func main() {
	reg := commands.NewRegistry("view")
	registerView(reg)
	registerPick(reg)
	registerList(reg)
	registerSnapshot(reg)

	if err := reg.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "strokeview:", err)
		if errors.Is(err, commands.ErrUnknown) {
			fmt.Fprintln(os.Stderr, "commands:")
			reg.PrintUsage(os.Stderr)
		}
		os.Exit(1)
	}
}
