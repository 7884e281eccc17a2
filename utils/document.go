package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// ErrUnreadable is returned when no usable text can be recovered from a
// document. Callers record the candidate as unevaluable instead of
// guessing at content.
var ErrUnreadable = errors.New("document yields no readable text")

// minReadableChars is the least text a resume must produce to be worth
// evaluating; anything shorter is noise from a binary container.
const minReadableChars = 100

// DocumentExtractor extracts plain text from uploaded resume files.
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// ExtractText converts document bytes to plain text based on the file
// extension. It returns ErrUnreadable when extraction produces nothing
// evaluable.
func (e *DocumentExtractor) ExtractText(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrUnreadable
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return string(data), nil

	case ".pdf":
		// Basic extraction of readable text; a dedicated PDF library
		// (e.g. github.com/ledongthuc/pdf) can replace this when layout
		// fidelity starts to matter.
		return e.extractPDFBasic(data)

	case ".doc", ".docx":
		return e.extractDocBasic(data)

	default:
		// Try treating as plain text
		return string(data), nil
	}
}

// ExtractFromMultipart reads an uploaded file and extracts its text.
func (e *DocumentExtractor) ExtractFromMultipart(file multipart.File, header *multipart.FileHeader) (string, error) {
	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return e.ExtractText(header.Filename, buf.Bytes())
}

func (e *DocumentExtractor) extractPDFBasic(data []byte) (string, error) {
	if !bytes.Contains(data, []byte("%PDF")) {
		// Not actually a PDF; fall back to raw text.
		return string(data), nil
	}

	text := printableRunes(data)
	if len(text) < minReadableChars {
		return "", ErrUnreadable
	}
	return text, nil
}

func (e *DocumentExtractor) extractDocBasic(data []byte) (string, error) {
	// DOCX is a ZIP container; without unzipping there is no text to
	// recover, so report it unreadable rather than feeding ZIP bytes to
	// the extractor.
	if len(data) > 4 && data[0] == 'P' && data[1] == 'K' {
		return "", ErrUnreadable
	}

	// Legacy .doc stores text inline between binary runs.
	text := printableRunes(data)
	if len(text) < minReadableChars {
		return "", ErrUnreadable
	}
	return text, nil
}

func printableRunes(data []byte) string {
	var sb strings.Builder
	for _, r := range string(data) {
		if r >= 32 && r <= 126 || r == '\n' || r == '\r' || r == '\t' {
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}

// IsSupportedFormat checks if the file format is supported
func (e *DocumentExtractor) IsSupportedFormat(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	supportedFormats := []string{".txt", ".pdf", ".doc", ".docx"}

	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}
