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

	"mica/internal/parser"
)

// SemanticTokenTypes is the legend advertised to clients. Indexes in
// semantic token data refer into this slice.
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"number",
	"string",
	"operator",
}

var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
}

// MicaHandler implements the LSP server handlers for the Mica language.
type MicaHandler struct {
	mu      sync.RWMutex
	content map[string]string
}

func NewMicaHandler() *MicaHandler {
	return &MicaHandler{
		content: make(map[string]string),
	}
}

// Initialize responds to the client's initialize request and
// advertises the server's capabilities.
func (h *MicaHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
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

func (h *MicaHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("Mica LSP initialized")
	return nil
}

func (h *MicaHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("Mica LSP shutdown")
	return nil
}

func (h *MicaHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor.
func (h *MicaHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)
	return h.refreshDiagnostics(ctx, params.TextDocument.URI)
}

// TextDocumentDidChange handles file change notifications from the editor.
func (h *MicaHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)
	return h.refreshDiagnostics(ctx, params.TextDocument.URI)
}

// TextDocumentDidClose handles file close notifications from the editor.
func (h *MicaHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
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

// TextDocumentCompletion offers the language's single keyword. With a
// grammar this small there is nothing else worth completing.
func (h *MicaHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	kind := protocol.CompletionItemKindKeyword
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items: []protocol.CompletionItem{
			{Label: "let", Kind: &kind},
		},
	}, nil
}

// TextDocumentSemanticTokensFull classifies every token in the
// document. Each line is rescanned; with one statement per line the
// token stream is the classification.
func (h *MicaHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	source, err := h.documentContent(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(source)

	var data []uint32
	var prevLine, prevStart uint32

	// Encode tokens into the LSP wire format (delta-line, delta-start).
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

	return &protocol.SemanticTokens{Data: data}, nil
}

func (h *MicaHandler) refreshDiagnostics(ctx *glsp.Context, rawURI protocol.DocumentUri) error {
	source, err := h.loadDocument(rawURI)
	if err != nil {
		return err
	}

	diagnostics := ConvertErrors(parser.CheckSource(source))
	sendDiagnosticNotification(ctx, rawURI, diagnostics)

	return nil
}

func (h *MicaHandler) loadDocument(rawURI protocol.DocumentUri) (string, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return "", fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}

	h.mu.Lock()
	h.content[path] = string(content)
	h.mu.Unlock()

	return string(content), nil
}

func (h *MicaHandler) documentContent(rawURI protocol.DocumentUri) (string, error) {
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

	return h.loadDocument(rawURI)
}

// uriToPath converts a file URI to a platform-local path.
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, strip the leading slash from /C:/... paths.
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
