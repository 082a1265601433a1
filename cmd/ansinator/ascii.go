package main

import (
	"flag"
	"strings"

	"github.com/dax99993/ansinator"
)

func runAscii(args []string) {
	fs := flag.NewFlagSet("ascii", flag.ExitOnError)

	var common commonFlags
	common.register(fs, "LANCZOS")
	charset := fs.String("c", ansinator.DefaultCharSet, "character `set` used for rendering")
	mode := fs.String("m", "PATTERN_QUADRANCE",
		"render `mode`: GRADIENT, PATTERN_QUADRANCE or PATTERN_SSIM")
	underline := fs.Bool("u", false, "underlined characters")
	truecolor := fs.Bool("r", false, "24-bit colors sampled from the image")
	termcolor := fs.Bool("t", false, "256 terminal colors sampled from the image")
	var fg, bg rgbValue
	fs.Var(&fg, "F", "fixed foreground `color` as R,G,B")
	fs.Var(&bg, "B", "fixed background `color` as R,G,B")
	fs.Parse(args)

	cfg := ansinator.NewAscii().WithCharSet(*charset)
	switch strings.ToUpper(*mode) {
	case "GRADIENT":
		cfg = cfg.Gradient()
	case "PATTERN_SSIM":
		cfg = cfg.PatternSSIM()
	default:
		cfg = cfg.PatternQuadrance()
	}
	if *underline {
		cfg = cfg.WithUnderline()
	}
	if *truecolor {
		cfg = cfg.WithTrueColor()
	}
	if *termcolor {
		cfg = cfg.WithTermColor()
	}
	if fg.set {
		cfg = cfg.WithForeground(fg.r, fg.g, fg.b)
	}
	if bg.set {
		cfg = cfg.WithBackground(bg.r, bg.g, bg.b)
	}
	cfg = common.apply(cfg)

	convert(cfg, &common, fs, "ascii")
}
