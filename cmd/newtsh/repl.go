package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jerbob92/wazero-newt/script"

	"github.com/peterh/liner"
)

const (
	historyFile = ".newtsh_history"
	promptMain  = "newtsh$ "
	promptCont  = "> "
)

func repl(ctx context.Context, in *script.Interp) int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		code, ok := readStatement(ln)
		if !ok {
			fmt.Println()
			return in.Status()
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		if _, err := in.Run(ctx, code); err != nil {
			fmt.Fprintf(os.Stderr, "newtsh: %v\n", err)
		}
		if in.Exited() {
			return in.Status()
		}
	}
}

// readStatement reads lines until they parse or fail for a reason other
// than running out of input.
func readStatement(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, err := script.Parse(src); err != nil && script.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}
