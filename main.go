package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"termicon/assets"
	"termicon/fonts"
	"termicon/log"
)

var version = "dev"

func main() {
	outFlag := flag.String("out", ".", "Output directory for the generated icons")
	fontFlag := flag.String("font", "", "Preferred font file, tried before the built-in candidates")
	icoFlag := flag.Bool("ico", true, "Also write icon.ico from the 256px render")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	quietFlag := flag.Bool("quiet", false, "Do not print the list of created files")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("termicon %s\n", version)
		os.Exit(0)
	}

	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to resolve log directory: %v\n", err)
	} else {
		log.SetDir(logPath)
		if err := log.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
		}
	}
	defer log.Close()

	outDir, err := filepath.Abs(*outFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := assets.Options{ICO: *icoFlag}
	if *fontFlag != "" {
		opts.Fonts = append([]string{*fontFlag}, fonts.DefaultCandidates...)
		log.Info("preferred font: " + *fontFlag)
	}

	start := time.Now()
	log.RunStart(version, outDir, assets.Sizes)
	manifest, err := assets.Generate(outDir, opts)
	if err != nil {
		log.Errorf("generate: %v", err)
		log.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.RunEnd(len(manifest.Files), time.Since(start))

	if *quietFlag {
		return
	}
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	printSummary(os.Stdout, manifest.Names(), styled)
}
