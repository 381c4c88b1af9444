package lsp

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"cpptok/internal/tokenizer"
)

// TokenHandler implements the LSP server handlers backed by the tokenizer.
type TokenHandler struct {
	mu      sync.RWMutex
	content map[string]string
}

// NewTokenHandler creates and returns a new TokenHandler instance.
func NewTokenHandler() *TokenHandler {
	return &TokenHandler{
		content: make(map[string]string),
	}
}

// Initialize responds to the client's initialize request and advertises the
// server's capabilities.
func (h *TokenHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

// Initialized is called once the client completes initialization.
func (h *TokenHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("cpptok LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *TokenHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("cpptok LSP Shutdown")
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor.
func (h *TokenHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateContent(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	if diagnostics != nil {
		sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	}
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor.
func (h *TokenHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
func (h *TokenHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateContent(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	if diagnostics != nil {
		sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	}
	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the
// entire document.
func (h *TokenHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	source, err := h.getOrLoadContent(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(source)

	// Encode into the LSP wire format (delta-line, delta-start compression).
	var data []uint32
	var prevLine, prevStart uint32
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

func (h *TokenHandler) getOrLoadContent(rawURI protocol.DocumentUri) (string, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return "", fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	h.mu.RLock()
	source, ok := h.content[path]
	h.mu.RUnlock()
	if ok {
		return source, nil
	}

	if _, err := h.updateContent(rawURI); err != nil {
		return "", err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.content[path], nil
}

func (h *TokenHandler) updateContent(rawURI protocol.DocumentUri) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	h.mu.Lock()
	h.content[path] = string(content)
	h.mu.Unlock()

	_, scanErr := tokenizer.Tokens(string(content))
	return ConvertScanError(scanErr), nil
}

// Convert URI to platform-local file path.
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove the leading slash (e.g., /C:/... -> C:/...)
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	log.Printf("Sending %d diagnostics for %s\n", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
