package main

import (
	"fmt"
	"os"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
