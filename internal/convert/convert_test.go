// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDOCX returns a minimal DOCX archive with one paragraph per entry.
func buildDOCX(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body bytes.Buffer
	for _, p := range paragraphs {
		fmt.Fprintf(&body, `<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`, p)
	}
	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// buildPDF returns a one-page PDF showing text in Helvetica.
func buildPDF(text string) []byte {
	stream := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(objs)+1)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return b.Bytes()
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		declared string
		want     string
	}{
		{
			name:     "plain text normalised",
			raw:      []byte("  First   line \n\n\n second\tline  \n"),
			declared: "text/plain; charset=utf-8",
			want:     "First line\nsecond line",
		},
		{
			name:     "text sniffed when undeclared",
			raw:      []byte("An essay about rivers."),
			declared: "",
			want:     "An essay about rivers.",
		},
		{
			name:     "docx paragraphs",
			raw:      buildDOCX(t, "My first paragraph.", "  My   second. "),
			declared: MIMEDOCX,
			want:     "My first paragraph.\nMy second.",
		},
		{
			name:     "msword handled as docx",
			raw:      buildDOCX(t, "Legacy type."),
			declared: MIMEDOC,
			want:     "Legacy type.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.raw, tt.declared)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPDF(t *testing.T) {
	raw := buildPDF("Hello essay")

	got, err := Extract(raw, MIMEPDF)
	require.NoError(t, err)
	assert.Contains(t, got, "Hello essay")

	sniffed, err := Extract(raw, "application/octet-stream")
	require.NoError(t, err)
	assert.Equal(t, got, sniffed)
}

func TestExtractErrors(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

	_, err := Extract(png, "")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = Extract([]byte("x"), "image/jpeg")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = Extract([]byte{0xff, 0xfe, 0xfd}, MIMEText)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = Extract([]byte(" \n\t "), MIMEText)
	assert.ErrorIs(t, err, ErrNoText)

	_, err = Extract(buildDOCX(t), MIMEDOCX)
	assert.ErrorIs(t, err, ErrNoText)

	_, err = Extract([]byte("not a zip"), MIMEDOCX)
	assert.Error(t, err)

	_, err = Extract([]byte("%PDF-1.4 truncated"), MIMEPDF)
	assert.Error(t, err)
}

func TestExtractPaths(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "essay.txt")
	docx := filepath.Join(dir, "essay.docx")
	missing := filepath.Join(dir, "missing.txt")
	require.NoError(t, os.WriteFile(good, []byte("Plain essay text."), 0o644))
	require.NoError(t, os.WriteFile(docx, buildDOCX(t, "Word essay."), 0o644))

	var buf bytes.Buffer
	docs, result := ExtractPaths([]string{good, missing, docx}, &buf)

	assert.Equal(t, 2, result.Extracted)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 3, result.Total())
	assert.True(t, result.HasFailures())
	require.Len(t, docs, 2)
	assert.Equal(t, "Plain essay text.", docs[0].Text)
	assert.Equal(t, "Word essay.", docs[1].Text)
	assert.Contains(t, buf.String(), "failed:    "+missing)
	assert.Contains(t, buf.String(), "extracted: "+good)
}
