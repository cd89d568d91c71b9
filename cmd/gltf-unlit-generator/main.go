package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/MozillaReality/gltf-unlit-generator/generator"
	"github.com/MozillaReality/gltf-unlit-generator/gltfutil"
	"github.com/MozillaReality/gltf-unlit-generator/unlit"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.gltf\n", os.Args[0])
		flag.PrintDefaults()
	}
	outDir := flag.String("o", "", "output directory (default: directory of the input file)")
	lighten := flag.Float64("l", -1, "lighten scalar (0.0-1.0) passed to the generator")
	genBin := flag.String("generator", generator.DefaultCommand, "texture generator binary")
	embed := flag.Bool("embed", false, "embed image files into the document buffer")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	input := flag.Arg(0)
	if *outDir == "" {
		*outDir = filepath.Dir(input)
	}

	options := &generator.Options{OutDir: *outDir}
	if *lighten >= 0 {
		if *lighten > 1 {
			log.Fatalf("lighten must be in [0.0, 1.0]: %v", *lighten)
		}
		options.Lighten = lighten
	}

	doc, err := gltfutil.Load(input)
	if err != nil {
		log.Fatal(err)
	}

	paths, err := generator.NewCommand(*genBin, options).Generate(input)
	if err != nil {
		log.Fatal(err)
	}

	if err := unlit.Patch(doc, paths); err != nil {
		log.Fatal(err)
	}

	if *embed {
		if err := gltfutil.EmbedImages(doc, filepath.Dir(input), *outDir); err != nil {
			log.Fatal(err)
		}
	}

	output := filepath.Join(*outDir, filepath.Base(input))
	if err := gltfutil.Save(doc, output); err != nil {
		log.Fatal(err)
	}
	log.Print("out: ", output)
}
