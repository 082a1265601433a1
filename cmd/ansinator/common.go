package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dax99993/ansinator"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/term"
)

// commonFlags carries the options shared by every render command.
type commonFlags struct {
	output     string
	noecho     bool
	bold       bool
	blink      bool
	invert     bool
	contrast   float64
	brighten   int
	fullscreen bool
	width      int
	height     int
	filter     string
}

func (c *commonFlags) register(fs *flag.FlagSet, defaultFilter string) {
	fs.StringVar(&c.output, "o", "", "save the output to `file`")
	fs.BoolVar(&c.noecho, "n", false, "do not print the output")
	fs.BoolVar(&c.bold, "b", false, "bold characters")
	fs.BoolVar(&c.blink, "k", false, "blinking characters")
	fs.BoolVar(&c.invert, "i", false, "invert the image colors")
	fs.Float64Var(&c.contrast, "C", 0, "contrast adjustment `percentage`")
	fs.IntVar(&c.brighten, "S", 0, "brightness adjustment `value`")
	fs.BoolVar(&c.fullscreen, "f", false, "use the full terminal size")
	fs.IntVar(&c.width, "W", 0, "output `width` in characters (0 = keep aspect ratio)")
	fs.IntVar(&c.height, "H", 0, "output `height` in characters (0 = keep aspect ratio)")
	fs.StringVar(&c.filter, "R", defaultFilter,
		"resampling `filter`: CATMULLROM, GAUSSIAN, LANCZOS, NEAREST or TRIANGLE")
}

// apply folds the common options into cfg.
func (c *commonFlags) apply(cfg ansinator.Config) ansinator.Config {
	cfg = cfg.WithFilter(ansinator.ParseFilter(c.filter)).
		WithContrast(float32(c.contrast)).
		WithBrighten(c.brighten).
		WithSize(c.size())
	if c.bold {
		cfg = cfg.WithBold()
	}
	if c.blink {
		cfg = cfg.WithBlink()
	}
	if c.invert {
		cfg = cfg.WithInvert()
	}
	return cfg
}

// size returns the requested output size, preferring the terminal
// dimensions in fullscreen mode.
func (c *commonFlags) size() (int, int) {
	if c.fullscreen {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			return w, h
		}
	}
	return c.width, c.height
}

// emit prints the result unless noecho is set and saves it when an
// output path was given.
func (c *commonFlags) emit(res *ansinator.Result) {
	if !c.noecho {
		res.Print()
	}
	if c.output != "" {
		if err := res.Save(c.output); err != nil {
			log.Fatalln("Error saving output:", err)
		}
	}
}

// rgbValue is a flag.Value holding an R,G,B color triple.
type rgbValue struct {
	set     bool
	r, g, b uint8
}

func (v *rgbValue) String() string {
	if !v.set {
		return ""
	}
	return fmt.Sprintf("%d,%d,%d", v.r, v.g, v.b)
}

func (v *rgbValue) Set(s string) error {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(parts) != 3 {
		return fmt.Errorf("want R,G,B, got %q", s)
	}

	var channels [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return fmt.Errorf("bad color channel %q", p)
		}
		channels[i] = uint8(n)
	}
	v.set = true
	v.r, v.g, v.b = channels[0], channels[1], channels[2]
	return nil
}

func imageArg(fs *flag.FlagSet, command string) string {
	if fs.Arg(0) == "" {
		log.Println("Usage: ansinator " + command + " [options] input_image")
		log.Println("")
		log.Println("Options:")
		fs.PrintDefaults()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func openImage(path string) image.Image {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalln("Error opening image:", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Fatalln("Error decoding image:", err)
	}
	return img
}

func convert(cfg ansinator.Config, common *commonFlags, fs *flag.FlagSet, command string) {
	img := openImage(imageArg(fs, command))

	res, err := cfg.Convert(img)
	if err != nil {
		log.Fatalln("Error converting image:", err)
	}
	common.emit(res)
}
