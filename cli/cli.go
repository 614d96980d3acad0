package cli

import (
	"bplustree/bptree"
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

type Cli struct {
	scanner    *bufio.Scanner
	out        io.Writer
	tree       *bptree.Tree[string]
	visualizer *bptree.Visualizer[string]
}

var (
	okColor   = color.New(color.FgGreen).SprintFunc()
	failColor = color.New(color.FgRed).SprintFunc()
)

func NewCli(s *bufio.Scanner, out io.Writer, t *bptree.Tree[string]) *Cli {
	v := &bptree.Visualizer[string]{
		Tree: t,
	}
	return &Cli{scanner: s, out: out, tree: t, visualizer: v}
}

// Start runs the read-eval loop until EXIT or the end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Fprintf(c.out, `
B+Tree CLI (order %d, leaf capacity %d)

Available Commands:
  SET <key>       Insert a key into the B+Tree
  DEL <key>       Remove a key from the B+Tree
  GET <key>       Report whether a key is in the B+Tree
  DUMP            Print the B+Tree level by level
  CHECK           Verify the B+Tree invariants
  STATS           Print key count and height
  EXIT            Terminate this session

`, c.tree.Order(), c.tree.LeafCapacity())
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

// processInput handles one line and reports whether the session continues.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		fmt.Fprintf(c.out, "Unknown command \"%s\"\n", command)
	case "set":
		c.processSetCommand(fields[1:])
	case "del":
		c.processDeleteCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "dump":
		fmt.Fprintln(c.out, c.visualizer.Visualize())
	case "check":
		c.processCheckCommand()
	case "stats":
		fmt.Fprintf(c.out, "keys: %d, height: %d\n", c.tree.Len(), c.tree.Height())
	case "exit":
		return false
	}
	return true
}

func (c *Cli) processSetCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: SET <key>")
		return
	}
	if c.tree.Find(args[0]) {
		fmt.Fprintln(c.out, "Key already present.")
		return
	}
	c.tree.Insert(args[0])
	fmt.Fprintln(c.out, c.visualizer.Visualize())
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: DEL <key>")
		return
	}
	err := c.tree.Delete(args[0])
	if errors.Is(err, bptree.ErrKeyNotFound) {
		fmt.Fprintln(c.out, "Key not found.")
		return
	}
	fmt.Fprintln(c.out, c.visualizer.Visualize())
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: GET <key>")
		return
	}
	if !c.tree.Find(args[0]) {
		fmt.Fprintln(c.out, "Key not found.")
		return
	}
	fmt.Fprintln(c.out, args[0])
}

func (c *Cli) processCheckCommand() {
	if err := c.tree.Verify(); err != nil {
		fmt.Fprintln(c.out, failColor(err.Error()))
		return
	}
	fmt.Fprintln(c.out, okColor("OK"))
}
