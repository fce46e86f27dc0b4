// Package intake turns uploaded documents and tracker issues into plain
// requirement text.
package intake

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrEmptyDocument     = errors.New("document contains no text")
)

type Format string

const (
	FormatPDF         Format = "pdf"
	FormatSpreadsheet Format = "xlsx"
)

// FormatOf resolves the document format from a file name.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "pdf":
		return FormatPDF, nil
	case "xlsx", "xlsm":
		return FormatSpreadsheet, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}
}

// Extract returns the requirement text held by an uploaded file.
func Extract(filename string, data []byte) (string, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return "", err
	}

	var text string
	switch format {
	case FormatPDF:
		text, err = PDFText(bytes.NewReader(data), int64(len(data)))
	case FormatSpreadsheet:
		text, err = SpreadsheetText(bytes.NewReader(data))
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

// PDFText joins the plain text of every readable page.
func PDFText(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}

	return strings.Join(pages, "\n\n"), nil
}

// SpreadsheetText turns every non-empty row of every sheet into a sentence.
func SpreadsheetText(r io.Reader) (string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", fmt.Errorf("opening spreadsheet: %w", err)
	}
	defer f.Close()

	var sentences []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("reading sheet %s: %w", sheet, err)
		}
		for _, row := range rows {
			if sentence := rowSentence(row); sentence != "" {
				sentences = append(sentences, sentence)
			}
		}
	}

	return strings.Join(sentences, " "), nil
}

func rowSentence(row []string) string {
	cells := make([]string, 0, len(row))
	for _, cell := range row {
		if cell = strings.TrimSpace(cell); cell != "" {
			cells = append(cells, cell)
		}
	}
	if len(cells) == 0 {
		return ""
	}
	return terminate(strings.Join(cells, " "))
}

func terminate(s string) string {
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}
