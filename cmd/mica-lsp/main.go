// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"mica/internal/lsp"
)

const lsName = "mica"

var (
	version = "0.0.1"
	handler protocol.Handler
)

func main() {
	// 1 = debug level, nil = default backend
	commonlog.Configure(1, nil)

	micaHandler := lsp.NewMicaHandler()

	handler = protocol.Handler{
		Initialize:                     micaHandler.Initialize,
		Initialized:                    micaHandler.Initialized,
		Shutdown:                       micaHandler.Shutdown,
		SetTrace:                       micaHandler.SetTrace,
		TextDocumentDidOpen:            micaHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           micaHandler.TextDocumentDidClose,
		TextDocumentDidChange:          micaHandler.TextDocumentDidChange,
		TextDocumentCompletion:         micaHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: micaHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Printf("Starting Mica LSP server %s...\n", version)

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting Mica LSP server:", err)
		os.Exit(1)
	}
}
