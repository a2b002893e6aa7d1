package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func writeZip(t *testing.T, name string, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for entry, body := range entries {
		w, err := zw.Create(entry)
		if err != nil {
			t.Fatalf("failed to add %s: %v", entry, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("failed to write %s: %v", entry, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to finalize fixture: %v", err)
	}
	return path
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapses spaces",
			input: "hello    world",
			want:  "hello world",
		},
		{
			name:  "collapses newline runs",
			input: "one\n\n\n\ntwo",
			want:  "one\n\ntwo",
		},
		{
			name:  "preserves single blank line",
			input: "one\n\ntwo",
			want:  "one\n\ntwo",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  \n text \n  ",
			want:  "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractUnsupportedType(t *testing.T) {
	e := New()
	_, err := e.Extract("ignored.bin", "bin")
	if err == nil {
		t.Fatal("expected error for unsupported file type")
	}
	if !strings.Contains(err.Error(), "unsupported file type") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExtractTXT(t *testing.T) {
	e := New()

	path := writeFile(t, "doc.txt", []byte("plain   text\ncontent"))
	got, err := e.Extract(path, "txt")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "plain text\ncontent" {
		t.Errorf("Extract() = %q", got)
	}
}

func TestExtractTXTLatin1Fallback(t *testing.T) {
	e := New()

	// "café" encoded as Latin-1: 0xE9 is not valid UTF-8 on its own.
	path := writeFile(t, "legacy.txt", []byte{'c', 'a', 'f', 0xE9})
	got, err := e.Extract(path, "txt")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "café" {
		t.Errorf("Extract() = %q, want %q", got, "café")
	}
}

func TestExtractDOCX(t *testing.T) {
	e := New()

	body := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second</w:t></w:r><w:r><w:t xml:space="preserve"> paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`
	path := writeZip(t, "doc.docx", map[string]string{
		"word/document.xml": body,
	})

	got, err := e.Extract(path, "docx")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !strings.Contains(got, "First paragraph.") {
		t.Errorf("missing first paragraph in %q", got)
	}
	if !strings.Contains(got, "Second paragraph.") {
		t.Errorf("missing second paragraph in %q", got)
	}
	if !strings.Contains(got, "First paragraph.\nSecond paragraph.") {
		t.Errorf("paragraphs not separated by newline in %q", got)
	}
}

func TestExtractDOCXMissingBody(t *testing.T) {
	e := New()

	path := writeZip(t, "broken.docx", map[string]string{
		"word/styles.xml": "<w:styles/>",
	})
	if _, err := e.Extract(path, "docx"); err == nil {
		t.Fatal("expected error for DOCX without word/document.xml")
	}
}

func TestExtractXLSX(t *testing.T) {
	e := New()

	sharedStrings := `<?xml version="1.0"?>
<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <si><t>Name</t></si>
  <si><t>Revenue</t></si>
  <si><r><t>Acme</t></r><r><t> Corp</t></r></si>
</sst>`
	workbook := `<?xml version="1.0"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <sheets>
    <sheet name="Accounts" sheetId="1"/>
    <sheet name="Totals" sheetId="2"/>
  </sheets>
</workbook>`
	sheet1 := `<?xml version="1.0"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <sheetData>
    <row><c t="s"><v>0</v></c><c t="s"><v>1</v></c></row>
    <row><c t="s"><v>2</v></c><c><v>1200</v></c></row>
  </sheetData>
</worksheet>`
	sheet2 := `<?xml version="1.0"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <sheetData>
    <row><c t="inlineStr"><is><t>Grand total</t></is></c><c><v>1200</v></c></row>
  </sheetData>
</worksheet>`
	path := writeZip(t, "book.xlsx", map[string]string{
		"xl/sharedStrings.xml":     sharedStrings,
		"xl/workbook.xml":          workbook,
		"xl/worksheets/sheet1.xml": sheet1,
		"xl/worksheets/sheet2.xml": sheet2,
	})

	got, err := e.Extract(path, "xlsx")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	for _, want := range []string{
		"=== Sheet: Accounts ===",
		"Name | Revenue",
		"Acme Corp | 1200",
		"=== Sheet: Totals ===",
		"Grand total | 1200",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in extracted text:\n%s", want, got)
		}
	}

	if strings.Index(got, "Accounts") > strings.Index(got, "Totals") {
		t.Errorf("sheets out of order:\n%s", got)
	}
}

func TestExtractXLSXNoWorksheets(t *testing.T) {
	e := New()

	path := writeZip(t, "empty.xlsx", map[string]string{
		"xl/workbook.xml": `<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><sheets/></workbook>`,
	})
	if _, err := e.Extract(path, "xlsx"); err == nil {
		t.Fatal("expected error for XLSX without worksheets")
	}
}

func TestExtractMarkdown(t *testing.T) {
	e := New()

	md := `# Quarterly Report

Revenue grew **12%** over the prior quarter.

- new accounts: 40
- churn: 3

` + "```\ntotal = 1200\n```\n"
	path := writeFile(t, "report.md", []byte(md))

	got, err := e.Extract(path, "md")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	for _, want := range []string{
		"Quarterly Report",
		"Revenue grew 12% over the prior quarter.",
		"new accounts: 40",
		"churn: 3",
		"total = 1200",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in extracted text:\n%s", want, got)
		}
	}
	if strings.Contains(got, "**") || strings.Contains(got, "```") {
		t.Errorf("markdown markers leaked into extracted text:\n%s", got)
	}
}

func TestExtractMarkdownEmpty(t *testing.T) {
	e := New()

	path := writeFile(t, "empty.md", []byte("   \n  "))
	if _, err := e.Extract(path, "md"); err == nil {
		t.Fatal("expected error for markdown without text")
	}
}
