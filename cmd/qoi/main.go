// Command qoi converts image files to and from the QOI format.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/stb-labs/qoi"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: qoi convert <src> <dst.qoi> | qoi topng <src.qoi> <dst.png> | qoi info <src.qoi>")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "convert":
		if len(os.Args) != 4 {
			usage()
		}
		convert(os.Args[2], os.Args[3])
	case "topng":
		if len(os.Args) != 4 {
			usage()
		}
		toPNG(os.Args[2], os.Args[3])
	case "info":
		if len(os.Args) != 3 {
			usage()
		}
		info(os.Args[2])
	default:
		usage()
	}
}

func convert(src, dst string) {
	in, err := os.Open(src)
	if err != nil {
		log.Fatalf("failed to open source file: %v", err)
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		log.Fatalf("failed to decode source image: %v", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		log.Fatalf("failed to open write file: %v", err)
	}
	defer out.Close()

	if err := qoi.ImageEncode(out, img); err != nil {
		log.Fatalf("failed to encode qoi: %v", err)
	}
}

func toPNG(src, dst string) {
	in, err := os.Open(src)
	if err != nil {
		log.Fatalf("failed to open source file: %v", err)
	}
	defer in.Close()

	img, err := qoi.ImageDecode(in)
	if err != nil {
		log.Fatalf("failed to decode qoi: %v", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		log.Fatalf("failed to open write file: %v", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		log.Fatalf("failed to encode png: %v", err)
	}
}

func info(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open file: %v", err)
	}
	defer f.Close()

	config, err := qoi.DecodeConfig(f)
	if err != nil {
		log.Fatalf("failed to decode config: %v\n", err)
	}
	fmt.Printf("config: %v \n", config)
}
