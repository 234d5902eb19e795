package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jerbob92/wazero-newt/generator/generator"
)

var (
	fileName    string
	catalogPath *string
	toolkitPath *string
	outFile     *string
)

func init() {
	fileName = os.Getenv("GOFILE")
	catalogPath = flag.String("catalog", "catalog.yaml", "the catalog describing the natives and commands")
	toolkitPath = flag.String("toolkit", "github.com/jerbob92/wazero-newt/toolkit", "import path of the native toolkit package")
	outFile = flag.String("out", "catalog_generated.go", "the file to write, relative to the current directory")
}

func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of wazero-newt/generator:\n")
	fmt.Fprintf(os.Stderr, "\t//go:generate go run ../generator -catalog ../generator/catalog.yaml\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = Usage
	flag.Parse()

	dir, err := filepath.Abs(".")
	if err != nil {
		log.Fatal(err)
	}

	err = generator.Generate(generator.Options{
		Dir:      dir,
		FileName: fileName,
		Catalog:  *catalogPath,
		Toolkit:  *toolkitPath,
		Out:      *outFile,
	})
	if err != nil {
		log.Fatal(err)
	}
}
