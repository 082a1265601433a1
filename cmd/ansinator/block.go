package main

import (
	"flag"
	"strings"

	"github.com/dax99993/ansinator"
)

func runBlock(args []string) {
	fs := flag.NewFlagSet("block", flag.ExitOnError)

	var common commonFlags
	common.register(fs, "NEAREST")
	mode := fs.String("m", "HALF", "render `mode`: HALF or WHOLE")
	termcolor := fs.Bool("t", false, "256 terminal colors instead of true color")
	fs.Parse(args)

	cfg := ansinator.NewBlock()
	if strings.ToUpper(*mode) == "WHOLE" {
		cfg = cfg.Whole()
	}
	if *termcolor {
		cfg = cfg.WithTermColor()
	}
	cfg = common.apply(cfg)

	convert(cfg, &common, fs, "block")
}
