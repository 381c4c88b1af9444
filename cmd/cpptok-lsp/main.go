// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"cpptok/internal/lsp"
)

const lsName = "cpptok" // Name identifier for the language server

var handler protocol.Handler // Protocol handler instance (wired up below)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	tokenHandler := lsp.NewTokenHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     tokenHandler.Initialize,
		Initialized:                    tokenHandler.Initialized,
		Shutdown:                       tokenHandler.Shutdown,
		TextDocumentDidOpen:            tokenHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           tokenHandler.TextDocumentDidClose,
		TextDocumentDidChange:          tokenHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: tokenHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting cpptok LSP server...")

	// Serve over standard input/output, the transport editors expect
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting cpptok LSP server:", err)
		os.Exit(1)
	}
}
