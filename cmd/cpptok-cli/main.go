// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"cpptok/internal/tokenizer"
)

func main() {
	var path string
	var compact bool
	for _, arg := range os.Args[1:] {
		if arg == "-compact" {
			compact = true
			continue
		}
		path = arg
	}
	if path == "" {
		fmt.Println("Usage: cpptok [-compact] <file.hxx>")
		os.Exit(1)
	}

	startTime := time.Now()

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	var opts []tokenizer.Option
	if compact {
		opts = append(opts, tokenizer.DiscardSeparators())
	}

	tokens, scanErr := tokenizer.Tokens(string(source), opts...)
	for _, tok := range tokens {
		printToken(tok)
	}

	duration := time.Since(startTime)
	formattedDuration := formatDuration(duration)

	if scanErr != nil {
		fmt.Print(FormatScanError(path, scanErr, string(source)))
		color.Red("Tokenization failed after %s", formattedDuration)
		os.Exit(1)
	}
	color.Green("Tokenized %s (%d tokens) in %s", path, len(tokens), formattedDuration)
}

func printToken(tok tokenizer.Token) {
	paint := tokenColor(tok.Type)
	fmt.Printf("%4d:%-3d %-12s %s\n",
		tok.Position.Line, tok.Position.Column,
		tok.Type, paint("%q", tok.Text))
}

func tokenColor(tt tokenizer.TokenType) func(format string, a ...any) string {
	switch tt {
	case tokenizer.COMMENT, tokenizer.DOC_COMMENT:
		return color.New(color.FgGreen).Sprintf
	case tokenizer.STRING_LIT, tokenizer.CHAR_LIT:
		return color.New(color.FgYellow).Sprintf
	case tokenizer.NUMBER:
		return color.New(color.FgCyan).Sprintf
	case tokenizer.PREPROC, tokenizer.PREPROC_DEFINE, tokenizer.PREPROC_FLOW,
		tokenizer.PREPROC_INCLUDE, tokenizer.PREPROC_OTHER:
		return color.New(color.FgMagenta).Sprintf
	case tokenizer.WHITESPACE:
		return color.New(color.Faint).Sprintf
	default:
		return fmt.Sprintf
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

func FormatScanError(path string, err error, source string) string {
	var scanErr *tokenizer.ScanError
	if !errors.As(err, &scanErr) {
		return fmt.Sprintf("error: %v\n", err)
	}
	return formatError(path, scanErr.Message, scanErr.Position, 1, source)
}

func formatError(path, message string, pos tokenizer.Position, length int, source string) string {
	lines := strings.Split(source, "\n")

	var lineContent string
	if pos.Line-1 < len(lines) && pos.Line-1 >= 0 {
		lineContent = lines[pos.Line-1]
	} else {
		lineContent = ""
	}

	// Prepare the underline
	marker := strings.Repeat(" ", max(0, pos.Column-1)) +
		strings.Repeat("^", max(1, length))

	// Color setup
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	// Compute width for line number column
	lineNumberWidth := len(fmt.Sprintf("%d", pos.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3 // minimum width for visual alignment
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	return fmt.Sprintf(
		"%s: %s\n%s┌─ %s:%d:%d\n%s│\n%3d│%s\n%s│%s\n\n",
		red("error"),
		message,
		indent,
		path, pos.Line, pos.Column,
		indent,
		pos.Line, lineContent,
		indent,
		bold(marker),
	)
}
