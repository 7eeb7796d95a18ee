// This "script" generates or checks the flag reference files under docs/flags,
// one per language.
//
//   go run scripts/cheatsheet/main.go generate
//   go run scripts/cheatsheet/main.go check

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jesseduffield/lazyls/pkg/cheatsheet"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Please provide a command: one of 'generate', 'check'")
	}

	command := os.Args[1]

	switch command {
	case "generate":
		cheatsheet.Generate()
		fmt.Printf("\nGenerated flag references in %s\n", cheatsheet.GetFlagsDir())
	case "check":
		cheatsheet.Check()
	default:
		log.Fatal("\nUnknown command. Expected one of 'generate', 'check'")
	}
}
