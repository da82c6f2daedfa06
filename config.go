package main

import (
	"flag"
	"fmt"
	"io"

	"chip8-host/chip8"
)

type config struct {
	instructionsPerStep int
	showFPS             bool
	zoom                int
	trace               bool
}

func parseFlags(name string, args []string) (config, error) {
	var cfg config
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.IntVar(&cfg.instructionsPerStep, "ipf", chip8.DefaultInstructionsPerStep, "CHIP-8 instructions executed per frame")
	flagSet.BoolVar(&cfg.showFPS, "fps", true, "Draw the frame rate in the top-left corner")
	flagSet.IntVar(&cfg.zoom, "zoom", 2, "Window zoom factor")
	flagSet.BoolVar(&cfg.trace, "trace", false, "Log the program disassembly at startup")

	if err := flagSet.Parse(args); err != nil {
		return config{}, err
	}
	if flagSet.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected argument %q", flagSet.Arg(0))
	}
	if cfg.instructionsPerStep <= 0 {
		return config{}, fmt.Errorf("-ipf must be positive, got %d", cfg.instructionsPerStep)
	}
	if cfg.zoom <= 0 {
		return config{}, fmt.Errorf("-zoom must be positive, got %d", cfg.zoom)
	}
	return cfg, nil
}
