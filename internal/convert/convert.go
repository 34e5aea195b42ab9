// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert extracts plain text from uploaded essay files: PDF,
// Word (DOCX) and plain text.
package convert

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

// Supported MIME types.
const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEDOC  = "application/msword"
	MIMEText = "text/plain"
)

var (
	// ErrUnsupportedType is returned for content that is not PDF, DOCX or text.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrNoText is returned when a supported file contains no text.
	ErrNoText = errors.New("no extractable text")
)

// Extract returns the text of raw. The declared MIME type selects the
// parser; an empty or generic declaration is replaced by the sniffed type.
// Whitespace is normalised: blank lines are dropped and runs of spaces
// collapse to one.
func Extract(raw []byte, declared string) (string, error) {
	mt := baseType(declared)
	if mt == "" || mt == "application/octet-stream" || mt == "application/zip" {
		mt = baseType(mimetype.Detect(raw).String())
	}

	var (
		text string
		err  error
	)
	switch mt {
	case MIMEPDF:
		text, err = parsePDF(raw)
	case MIMEDOCX, MIMEDOC:
		text, err = parseDOCX(raw)
	case MIMEText:
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("%w: text is not valid UTF-8", ErrUnsupportedType)
		}
		text = string(raw)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mt)
	}
	if err != nil {
		return "", err
	}

	text = normalizeWhitespace(text)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// ExtractFile reads path and extracts its text, declaring the type from the
// file extension.
func ExtractFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	declared := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		declared = MIMEDOCX
	case ".txt", ".md":
		declared = MIMEText
	}
	text, err := Extract(raw, declared)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return text, nil
}

// Document is one extracted file.
type Document struct {
	Path string
	Text string
}

// BatchResult holds the outcome of a batch extraction run.
type BatchResult struct {
	Extracted int
	Failed    int
}

// Total returns the number of files processed.
func (r BatchResult) Total() int { return r.Extracted + r.Failed }

// HasFailures reports whether any file failed extraction.
func (r BatchResult) HasFailures() bool { return r.Failed > 0 }

// ExtractPaths extracts every path in order, printing per-file status to w.
// Failed files are reported and skipped.
func ExtractPaths(paths []string, w io.Writer) ([]Document, BatchResult) {
	var (
		docs   []Document
		result BatchResult
	)
	for _, p := range paths {
		text, err := ExtractFile(p)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", p, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "extracted: %s (%d chars)\n", p, utf8.RuneCountInString(text))
		docs = append(docs, Document{Path: p, Text: text})
		result.Extracted++
	}
	return docs, result
}

func baseType(v string) string {
	if v == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(v)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return mt
}

func parseDOCX(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("opening docx: %w", err)
	}

	var xmlData []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("opening document.xml: %w", err)
		}
		xmlData, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("reading document.xml: %w", err)
		}
		break
	}
	if xmlData == nil {
		return "", fmt.Errorf("%w: word/document.xml not found", ErrUnsupportedType)
	}

	dec := xml.NewDecoder(bytes.NewReader(xmlData))
	var b strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decoding document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "p":
				if b.Len() > 0 {
					b.WriteString("\n")
				}
			case "tab":
				b.WriteString("\t")
			case "br":
				b.WriteString("\n")
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

func parsePDF(raw []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
