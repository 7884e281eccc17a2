package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextPlainText(t *testing.T) {
	e := NewDocumentExtractor()

	text, err := e.ExtractText("resume.txt", []byte("Budi Santoso\nSoftware Engineer"))
	assert.NoError(t, err)
	assert.Equal(t, "Budi Santoso\nSoftware Engineer", text)
}

func TestExtractTextEmptyFile(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.ExtractText("resume.txt", nil)
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestExtractTextDocxIsUnreadable(t *testing.T) {
	e := NewDocumentExtractor()

	// DOCX files start with the ZIP magic bytes.
	_, err := e.ExtractText("resume.docx", []byte("PK\x03\x04ziplikecontent"))
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestExtractTextPDFWithReadableText(t *testing.T) {
	e := NewDocumentExtractor()

	body := "%PDF-1.4 " + strings.Repeat("Experienced data engineer with Python and SQL. ", 5)
	text, err := e.ExtractText("resume.pdf", []byte(body))
	assert.NoError(t, err)
	assert.Contains(t, text, "data engineer")
}

func TestExtractTextShortBinaryPDF(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.ExtractText("resume.pdf", []byte("%PDF\x00\x01\x02tiny"))
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestExtractTextMislabeledPDFFallsBackToRaw(t *testing.T) {
	e := NewDocumentExtractor()

	text, err := e.ExtractText("resume.pdf", []byte("just plain text, no pdf header"))
	assert.NoError(t, err)
	assert.Equal(t, "just plain text, no pdf header", text)
}

func TestIsSupportedFormat(t *testing.T) {
	e := NewDocumentExtractor()

	assert.True(t, e.IsSupportedFormat("cv.pdf"))
	assert.True(t, e.IsSupportedFormat("CV.DOCX"))
	assert.True(t, e.IsSupportedFormat("cv.txt"))
	assert.False(t, e.IsSupportedFormat("cv.png"))
}
