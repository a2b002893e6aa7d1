package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// extractMarkdown parses a markdown file with goldmark and renders its AST
// back to plain text. Formatting markers are dropped but block structure
// (headings, paragraphs, list items, code blocks) is kept as line breaks.
func extractMarkdown(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read markdown file: %w", err)
	}

	parser := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := parser.Parser().Parse(text.NewReader(content))

	var sb strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch v := n.(type) {
		case *ast.Heading, *ast.Paragraph, *ast.ListItem, *ast.Blockquote:
			if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
				sb.WriteString("\n")
			}
			return ast.WalkContinue, nil

		case *ast.FencedCodeBlock:
			if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
				sb.WriteString("\n")
			}
			lines := v.Lines()
			for i := 0; i < lines.Len(); i++ {
				segment := lines.At(i)
				sb.Write(segment.Value(content))
			}
			return ast.WalkSkipChildren, nil

		case *ast.Text:
			sb.Write(v.Segment.Value(content))
			if v.HardLineBreak() || v.SoftLineBreak() {
				sb.WriteString("\n")
			} else {
				sb.WriteString(" ")
			}
			return ast.WalkContinue, nil

		case *ast.String:
			sb.Write(v.Value)
			return ast.WalkContinue, nil

		default:
			// Table rows from the extension render one row per line.
			kindName := n.Kind().String()
			if strings.Contains(kindName, "TableRow") || strings.Contains(kindName, "TableHeader") {
				if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
					sb.WriteString("\n")
				}
			}
			return ast.WalkContinue, nil
		}
	})

	extracted := sb.String()
	if strings.TrimSpace(extracted) == "" {
		return "", fmt.Errorf("no text could be extracted from markdown")
	}
	return extracted, nil
}
