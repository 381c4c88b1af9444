// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"cpptok/internal/tokenizer"
)

const PROMPT = ">> "

// Start reads lines from in and prints the token stream of each one.
func Start(in io.Reader) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Print(PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()
		it := tokenizer.NewTokenIterator(line)
		for ; !it.AtEnd(); it.Next() {
			tok := it.Token()
			fmt.Printf("%-12s %q\n", tok.Type, tok.Text)
		}
		if err := it.Err(); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}
