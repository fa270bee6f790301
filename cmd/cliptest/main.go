//go:build ignore

// Manual check that the system clipboard is reachable:
//
//	go run ./cmd/cliptest "some text"
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/artilence/agentchat/internal/clipboard"
)

func main() {
	text := "agentchat clipboard test"
	if len(os.Args) > 1 {
		text = strings.Join(os.Args[1:], " ")
	}

	fmt.Println("Testing clipboard write...")
	if err := clipboard.WriteText(text); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Copied %q, paste somewhere to verify\n", text)
}
