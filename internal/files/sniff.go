package files

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// expectedMIMEs maps a file type to the MIME types its content may sniff as.
// OOXML formats are zip containers, so plain zip is accepted for them.
var expectedMIMEs = map[string][]string{
	"pdf":  {"application/pdf"},
	"docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
	"xlsx": {"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "application/zip"},
	"txt":  {"text/"},
	"md":   {"text/"},
}

// VerifyContent sniffs the content of a saved file and checks it is
// plausible for the declared file type.
func (s *Store) VerifyContent(path, fileType string) error {
	return VerifyContent(path, fileType)
}

// VerifyContent sniffs the content of the saved file and checks it is
// plausible for the declared file type. It guards against uploads whose
// extension does not match the bytes inside.
func VerifyContent(path, fileType string) error {
	expected, ok := expectedMIMEs[strings.ToLower(fileType)]
	if !ok {
		return fmt.Errorf("unsupported file type: %s", fileType)
	}

	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return fmt.Errorf("failed to detect content type: %w", err)
	}

	got := detected.String()
	for _, want := range expected {
		if strings.HasSuffix(want, "/") {
			if strings.HasPrefix(got, want) {
				return nil
			}
			continue
		}
		if detected.Is(want) {
			return nil
		}
	}
	return fmt.Errorf("file content (%s) does not match declared type %s", got, fileType)
}
