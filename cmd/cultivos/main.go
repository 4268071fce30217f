// Command cultivos runs the plot harvest planner: an HTTP API plus CLI
// shortcuts over the same SQLite database.
package main

import (
	"fmt"
	"os"
)

func main() {
	root, e := newRootCmd()
	err := root.Execute()
	if cerr := e.close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
