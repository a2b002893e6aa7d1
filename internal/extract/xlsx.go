package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// extractXLSX renders every sheet of a workbook as text: a header line per
// sheet followed by rows with cells joined by " | ". XLSX is a zip archive
// of SpreadsheetML; string cells reference a shared-strings table.
func extractXLSX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open XLSX archive: %w", err)
	}
	defer func() {
		_ = zr.Close()
	}()

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	shared, err := readSharedStrings(files["xl/sharedStrings.xml"])
	if err != nil {
		return "", err
	}
	names, err := readSheetNames(files["xl/workbook.xml"])
	if err != nil {
		return "", err
	}

	var sheetFiles []string
	for name := range files {
		if strings.HasPrefix(name, "xl/worksheets/sheet") && strings.HasSuffix(name, ".xml") {
			sheetFiles = append(sheetFiles, name)
		}
	}
	if len(sheetFiles) == 0 {
		return "", fmt.Errorf("invalid XLSX: no worksheets found")
	}
	sort.Slice(sheetFiles, func(i, j int) bool {
		return sheetNumber(sheetFiles[i]) < sheetNumber(sheetFiles[j])
	})

	var parts []string
	for i, sheetFile := range sheetFiles {
		name := fmt.Sprintf("Sheet%d", i+1)
		if i < len(names) {
			name = names[i]
		}

		rows, err := readSheetRows(files[sheetFile], shared)
		if err != nil {
			return "", err
		}
		if len(rows) == 0 {
			continue
		}

		parts = append(parts, fmt.Sprintf("=== Sheet: %s ===", name))
		parts = append(parts, rows...)
		parts = append(parts, "")
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no data could be extracted from XLSX")
	}
	return strings.Join(parts, "\n"), nil
}

func sheetNumber(name string) int {
	digits := strings.TrimSuffix(strings.TrimPrefix(name, "xl/worksheets/sheet"), ".xml")
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// readSharedStrings parses xl/sharedStrings.xml into an indexed table.
// The file is optional: workbooks without string cells omit it.
func readSharedStrings(f *zip.File) ([]string, error) {
	if f == nil {
		return nil, nil
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to read shared strings: %w", err)
	}
	defer func() {
		_ = rc.Close()
	}()

	var table struct {
		Items []struct {
			Text string `xml:"t"`
			Runs []struct {
				Text string `xml:"t"`
			} `xml:"r"`
		} `xml:"si"`
	}
	if err := xml.NewDecoder(rc).Decode(&table); err != nil {
		return nil, fmt.Errorf("failed to parse shared strings: %w", err)
	}

	out := make([]string, len(table.Items))
	for i, item := range table.Items {
		if len(item.Runs) > 0 {
			var sb strings.Builder
			for _, run := range item.Runs {
				sb.WriteString(run.Text)
			}
			out[i] = sb.String()
			continue
		}
		out[i] = item.Text
	}
	return out, nil
}

func readSheetNames(f *zip.File) ([]string, error) {
	if f == nil {
		return nil, nil
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}
	defer func() {
		_ = rc.Close()
	}()

	var workbook struct {
		Sheets []struct {
			Name string `xml:"name,attr"`
		} `xml:"sheets>sheet"`
	}
	if err := xml.NewDecoder(rc).Decode(&workbook); err != nil {
		return nil, fmt.Errorf("failed to parse workbook: %w", err)
	}

	names := make([]string, len(workbook.Sheets))
	for i, s := range workbook.Sheets {
		names[i] = s.Name
	}
	return names, nil
}

func readSheetRows(f *zip.File, shared []string) ([]string, error) {
	if f == nil {
		return nil, nil
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet: %w", err)
	}
	defer func() {
		_ = rc.Close()
	}()

	var sheet struct {
		Rows []struct {
			Cells []struct {
				Type   string `xml:"t,attr"`
				Value  string `xml:"v"`
				Inline string `xml:"is>t"`
			} `xml:"c"`
		} `xml:"sheetData>row"`
	}
	if err := xml.NewDecoder(rc).Decode(&sheet); err != nil {
		return nil, fmt.Errorf("failed to parse worksheet: %w", err)
	}

	var rows []string
	for _, row := range sheet.Rows {
		var cells []string
		for _, cell := range row.Cells {
			value := cell.Value
			switch cell.Type {
			case "s":
				idx, err := strconv.Atoi(cell.Value)
				if err != nil || idx < 0 || idx >= len(shared) {
					continue
				}
				value = shared[idx]
			case "inlineStr":
				value = cell.Inline
			}
			if strings.TrimSpace(value) != "" {
				cells = append(cells, value)
			}
		}
		if len(cells) > 0 {
			rows = append(rows, strings.Join(cells, " | "))
		}
	}
	return rows, nil
}
