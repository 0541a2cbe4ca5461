package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/binzume/gltfwriter/export"
	"github.com/binzume/gltfwriter/export/plugins"
	"github.com/binzume/gltfwriter/scene"
)

func defaultOutputFile(input string, binary bool) string {
	ext := strings.ToLower(filepath.Ext(input))
	base := input[0 : len(input)-len(ext)]
	if binary {
		return base + ".glb"
	}
	return base + ".gltf"
}

func loadInput(path string) (*scene.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var in scene.Input
	if err := json.NewDecoder(f).Decode(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &in, nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s input.json [output.gltf|output.glb]\n", os.Args[0])
		flag.PrintDefaults()
	}
	binary := flag.Bool("binary", false, "write a binary .glb container instead of a JSON document")
	configPath := flag.String("config", "", "path to a YAML config file (export.Config)")
	maxTextureSize := flag.Int("maxtexturesize", 0, "clamp texture width/height (0: unlimited)")
	trs := flag.Bool("trs", false, "force translation/rotation/scale node fields instead of matrices")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	input := flag.Arg(0)
	output := ""
	if flag.NArg() > 1 {
		output = flag.Arg(1)
	} else {
		output = defaultOutputFile(input, *binary)
	}

	in, err := loadInput(input)
	if err != nil {
		log.Fatal(err)
	}

	opts := export.DefaultOptions()
	registry := plugins.DefaultRegistry()
	if *configPath != "" {
		cfg, err := export.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		opts = cfg.Apply(opts)
		if cfg.Extensions != nil {
			registry = plugins.FilteredRegistry(cfg.Extensions)
		}
	}
	if *binary {
		opts.Binary = true
	}
	if *maxTextureSize > 0 {
		opts.MaxTextureSize = *maxTextureSize
	}
	if *trs {
		opts.TRS = true
	}

	w := export.NewWriter(registry, opts)
	result, err := w.Write(in)
	if err != nil {
		log.Fatal(err)
	}

	if err := save(result, output); err != nil {
		log.Fatal(err)
	}
}

func save(result *export.Result, output string) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	if result.Binary != nil {
		_, err := f.Write(result.Binary)
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(result.JSON)
}
