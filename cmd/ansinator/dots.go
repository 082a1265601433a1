package main

import (
	"errors"
	"flag"
	"log"

	"github.com/dax99993/ansinator"
)

// runDots handles the braile and uniblock commands, which share every
// option and differ only in the starting configuration.
func runDots(command string, cfg ansinator.Config, args []string) {
	fs := flag.NewFlagSet(command, flag.ExitOnError)

	var common commonFlags
	common.register(fs, "LANCZOS")
	threshold := fs.Int("t", 0, "manual binarize `threshold` 0-255 (default: Otsu's method)")
	var fg, bg rgbValue
	fs.Var(&fg, "F", "fixed foreground `color` as R,G,B")
	fs.Var(&bg, "B", "fixed background `color` as R,G,B")
	fs.Parse(args)

	value, given, err := manualThreshold(fs, *threshold)
	if err != nil {
		log.Fatalln(err)
	}
	if given {
		cfg = cfg.WithThreshold(value)
	}
	if fg.set {
		cfg = cfg.WithForeground(fg.r, fg.g, fg.b)
	}
	if bg.set {
		cfg = cfg.WithBackground(bg.r, bg.g, bg.b)
	}
	cfg = common.apply(cfg)

	convert(cfg, &common, fs, command)
}

// manualThreshold returns the -t value and whether the flag was given
// at all. An absent flag selects Otsu's method; a given value outside
// the byte range is rejected.
func manualThreshold(fs *flag.FlagSet, value int) (uint8, bool, error) {
	given := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			given = true
		}
	})
	if !given {
		return 0, false, nil
	}
	if value < 0 || value > 255 {
		return 0, false, errors.New("Threshold must be between 0 and 255.")
	}
	return uint8(value), true, nil
}
