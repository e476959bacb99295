// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"mica/internal/interp"
)

const (
	prompt      = ">> "
	historyFile = ".mica_history"
)

// Start runs the interactive loop. One scope lives for the whole
// session, so let bindings stay visible across inputs.
func Start() {
	fmt.Println("Mica REPL. Ctrl+D or :quit to exit.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
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

	scope := interp.NewScope()

	for {
		input, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			return
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return
		}
		ln.AppendHistory(input)

		result, ok, runErr := interp.RunWithScope(input, scope)
		if runErr != nil {
			color.Red("%s", runErr)
			continue
		}
		if ok {
			fmt.Println(result)
		}
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}
