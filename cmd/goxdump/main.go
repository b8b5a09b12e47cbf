package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-gum/gox"
)

func main() {
	var (
		strict = flag.Bool("strict", false, "enforce declared chunk sizes")
		crc    = flag.Bool("crc", false, "verify chunk checksums")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: goxdump [-strict] [-crc] <file.gox>")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "read file:", err)
		os.Exit(1)
	}

	dec := gox.NewDecoder()
	if *strict {
		dec = dec.StrictSizes()
	}
	if *crc {
		dec = dec.VerifyChecksums()
	}

	doc, err := dec.Decode(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decode:", err)
		os.Exit(1)
	}

	fmt.Printf("gox v%d chunks=%d\n", doc.Version, len(doc.Chunks))
	for _, chunk := range doc.Chunks {
		switch c := chunk.(type) {
		case gox.Image:
			fmt.Printf("%s keys=%s\n", c.Tag(), keys(c.Dict))
		case gox.Preview:
			fmt.Printf("%s %d bytes\n", c.Tag(), len(c.Data))
		case gox.BlockPalette:
			fmt.Printf("%s %d bytes\n", c.Tag(), len(c.Data))
		case gox.Layer:
			fmt.Printf("%s blocks=%d keys=%s\n", c.Tag(), len(c.Blocks), keys(c.Dict))
		case gox.Camera:
			fmt.Printf("%s keys=%s\n", c.Tag(), keys(c.Dict))
		case gox.Light:
			fmt.Printf("%s keys=%s\n", c.Tag(), keys(c.Dict))
		}
	}

	if len(doc.Rest) > 0 {
		fmt.Printf("%d unrecognized trailing bytes\n", len(doc.Rest))
	}
}

func keys(dict gox.Dict) string {
	names := make([]string, 0, len(dict))
	for name := range dict {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
