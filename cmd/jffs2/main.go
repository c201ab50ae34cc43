// Command jffs2 is a small CLI over the jffs2 package: list, cat, info and
// extract a JFFS2 image, mirroring cmd/sqfs's hand-rolled os.Args dispatch
// rather than reaching for a flag-parsing library (spec.md §6 keeps the CLI
// surface out of core scope, but an ambient CLI still exists).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/KarpelesLab/jffs2"
)

const usage = `jffs2 - JFFS2 image reader CLI

Usage:
  jffs2 ls <image>                 List every entry in the image
  jffs2 cat <image> <path>         Print the decompressed contents of one file
  jffs2 info <image>               Show endianness and table sizes
  jffs2 extract <image> <outdir>   Extract the whole tree to outdir
  jffs2 help                       Show this help message
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "ls":
		if len(os.Args) < 3 {
			err = fmt.Errorf("missing image path")
			break
		}
		err = listEntries(os.Args[2])
	case "cat":
		if len(os.Args) < 4 {
			err = fmt.Errorf("missing image path or file path")
			break
		}
		err = catFile(os.Args[2], os.Args[3])
	case "info":
		if len(os.Args) < 3 {
			err = fmt.Errorf("missing image path")
			break
		}
		err = showInfo(os.Args[2])
	case "extract":
		if len(os.Args) < 4 {
			err = fmt.Errorf("missing image path or output directory")
			break
		}
		err = extractImage(os.Args[2], os.Args[3])
	case "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", os.Args[1])
		fmt.Print(usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func listEntries(image string) error {
	r, err := jffs2.Open(image)
	if err != nil {
		return err
	}
	defer r.Close()

	entries, err := r.Entries()
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.IsFile {
			fmt.Printf("%10d  %s\n", e.Size(), e.Path)
		} else {
			fmt.Printf("%10s  %s/\n", "", e.Path)
		}
	}
	return nil
}

func catFile(image, path string) error {
	r, err := jffs2.Open(image)
	if err != nil {
		return err
	}
	defer r.Close()

	f, err := r.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(os.Stdout, f)
	return err
}

func showInfo(image string) error {
	r, err := jffs2.Open(image)
	if err != nil {
		return err
	}
	defer r.Close()

	endian := "big-endian"
	if r.LittleEndian() {
		endian = "little-endian"
	}

	fmt.Printf("endianness: %s\n", endian)
	fmt.Printf("dirents:    %d\n", r.DirentCount())
	fmt.Printf("inodes:     %d\n", r.InodeCount())
	return nil
}

func extractImage(image, outdir string) error {
	r, err := jffs2.Open(image)
	if err != nil {
		return err
	}
	defer r.Close()

	return r.ExtractTo(outdir)
}
