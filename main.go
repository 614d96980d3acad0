package main

import (
	"bplustree/bptree"
	"bplustree/cli"
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"
)

var order, leafCapacity, seedNumRecords *int
var shouldSeed, useColor *bool

func seedTreeWithTestKeys(t *bptree.Tree[string]) {
	for i := 0; i < *seedNumRecords; i++ {
		t.Insert(faker.Word() + faker.Word())
	}
	log.Printf("seeded tree with %d distinct keys", t.Len())
}

func main() {
	setupFlags()
	color.NoColor = color.NoColor || !*useColor

	tree, err := bptree.New[string](*order, *leafCapacity)
	if err != nil {
		log.Fatal(err)
	}

	if *shouldSeed {
		seedTreeWithTestKeys(tree)
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, os.Stdout, tree)
	demo.Start()
}

func setupFlags() {
	order = flag.Int("order", 4, "Maximum number of children of an index node (at least 3).")
	leafCapacity = flag.Int("leaf", 4, "Maximum number of keys of a record leaf (at least 2).")
	shouldSeed = flag.Bool("seed", false, "Seed the tree using keys created with go-faker.")
	seedNumRecords = flag.Int("records", 100, "Amount of keys to seed the tree with upon startup.")
	useColor = flag.Bool("color", true, "Colorize the tree visualization.")
	flag.Usage = func() {
		fmt.Println("\nB+Tree CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
