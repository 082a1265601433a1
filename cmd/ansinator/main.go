package main

import (
	"log"
	"os"

	"github.com/dax99993/ansinator"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "ascii":
		runAscii(os.Args[2:])
	case "braile":
		runDots("braile", ansinator.NewBraille(), os.Args[2:])
	case "uniblock":
		runDots("uniblock", ansinator.NewSextant(), os.Args[2:])
	case "block":
		runBlock(os.Args[2:])
	case "help", "-h", "-help", "--help":
		usage()
	default:
		log.Println("Unknown command:", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	log.Println("Usage: ansinator <command> [options] input_image")
	log.Println("")
	log.Println("Ansinator converts an image into ANSI terminal art.")
	log.Println("")
	log.Println("Commands:")
	log.Println("  ascii      render with ASCII characters")
	log.Println("  braile     render with Braille 8-dot cells")
	log.Println("  uniblock   render with Unicode sextant blocks")
	log.Println("  block      render with colored half or whole blocks")
	log.Println("")
	log.Println("Run ansinator <command> -h to list the command's options.")
}
