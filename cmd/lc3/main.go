package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"lc3vm/internal/lc3"
	"lc3vm/internal/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	verbose := flag.Bool("v", false, "log each image load and the final halt state")
	flag.BoolVar(verbose, "verbose", false, "alias for -v")
	flag.Usage = func() {
		fmt.Fprintf(os.Stdout, "lc3 [image-file1] ...\n")
	}
	flag.Parse()

	images := flag.Args()
	if len(images) < 1 {
		flag.Usage()
		return 2
	}

	console, err := term.Open()
	if err != nil {
		fmt.Fprintf(os.Stdout, "open terminal: %v\n", err)
		return 1
	}
	defer console.Close()

	vm := lc3.New(console)
	for _, path := range images {
		if *verbose {
			log.Printf("loading image %s", path)
		}
		if err := vm.LoadImage(path); err != nil {
			fmt.Fprintf(os.Stdout, "%v\n", err)
			return 1
		}
	}

	if err := vm.Run(); err != nil {
		fmt.Fprintf(os.Stdout, "%v\n", err)
		return 1
	}
	if *verbose {
		log.Printf("halted")
	}
	return 0
}
