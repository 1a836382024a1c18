// Package importer turns external documents into folio pages by asking
// the claude CLI to extract a title and a cleaned-up body. The CLI is an
// optional dependency; Available reports whether it can be used.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/folioapp/folio/internal/errors"
	"github.com/folioapp/folio/internal/logger"
)

// RunTimeout bounds a single parse call. Document parsing is a one-shot
// prompt, not a conversation; two minutes is generous.
const RunTimeout = 2 * time.Minute

// MaxDocumentBytes caps how much of a document is sent for parsing.
const MaxDocumentBytes = 256 * 1024

// ParsedDoc is the result of parsing one document.
type ParsedDoc struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// CommandRunner abstracts the claude CLI invocation so tests can supply
// canned output.
type CommandRunner interface {
	Run(ctx context.Context, prompt string) (string, error)
}

// execRunner shells out to `claude -p <prompt>` and returns stdout.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, "claude", "-p", prompt)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("claude exited: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(out), nil
}

// Importer parses documents into pages.
type Importer struct {
	runner CommandRunner
}

// New creates an Importer backed by the claude CLI.
func New() *Importer {
	return &Importer{runner: execRunner{}}
}

// NewWithRunner creates an Importer with a custom runner, for tests.
func NewWithRunner(r CommandRunner) *Importer {
	return &Importer{runner: r}
}

// Available reports whether the claude CLI is on PATH.
func (i *Importer) Available() bool {
	_, err := exec.LookPath("claude")
	return err == nil
}

// ImportFile reads the document at path and parses it into a page title
// and body.
func (i *Importer) ImportFile(ctx context.Context, path string) (*ParsedDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ImportFailed(path, err)
	}
	if len(data) > MaxDocumentBytes {
		data = data[:MaxDocumentBytes]
	}

	doc, err := i.Parse(ctx, filepath.Base(path), string(data))
	if err != nil {
		return nil, errors.ImportFailed(path, err)
	}
	return doc, nil
}

// Parse sends the document content for parsing and decodes the response.
func (i *Importer) Parse(ctx context.Context, name, content string) (*ParsedDoc, error) {
	ctx, cancel := context.WithTimeout(ctx, RunTimeout)
	defer cancel()

	prompt := buildPrompt(name, content)
	logger.WithComponent("importer").Info("parsing document", "name", name, "bytes", len(content))

	out, err := i.runner.Run(ctx, prompt)
	if err != nil {
		return nil, err
	}

	doc, err := decodeResponse(out)
	if err != nil {
		return nil, err
	}
	if doc.Title == "" {
		doc.Title = name
	}
	return doc, nil
}

func buildPrompt(name, content string) string {
	var b strings.Builder
	b.WriteString("Convert the following document into an editor page. ")
	b.WriteString("Respond with a single JSON object {\"title\": string, \"body\": string} and nothing else. ")
	b.WriteString("The body should be plain text with blank lines between paragraphs; keep code in fenced blocks.\n\n")
	b.WriteString("Filename: ")
	b.WriteString(name)
	b.WriteString("\n---\n")
	b.WriteString(content)
	return b.String()
}

// decodeResponse extracts the JSON object from the CLI output. The model
// sometimes wraps JSON in a markdown fence or leads with prose, so scan
// for the outermost braces.
func decodeResponse(out string) (*ParsedDoc, error) {
	out = strings.TrimSpace(out)
	start := strings.Index(out, "{")
	end := strings.LastIndex(out, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response: %.80q", out)
	}

	var doc ParsedDoc
	if err := json.Unmarshal([]byte(out[start:end+1]), &doc); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &doc, nil
}
