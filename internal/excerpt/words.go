package excerpt

import (
	"strings"
	"unicode"
)

// Ellipsis is appended when an excerpt is cut at the word limit.
const Ellipsis = " […]"

// CountWords counts the display words in a markdown string.
func CountWords(markdown string) int {
	text := cleanMarkdown(markdown)

	words := strings.FieldsFunc(text, unicode.IsSpace)

	count := 0
	for _, word := range words {
		if len(strings.TrimSpace(word)) > 0 {
			count++
		}
	}

	return count
}

// TrimWords cuts markdown after limit words, appending Ellipsis when anything
// was dropped. A limit of zero or less means no trimming.
func TrimWords(markdown string, limit int) string {
	if limit <= 0 {
		return markdown
	}

	fields := strings.Fields(markdown)
	if len(fields) <= limit {
		return markdown
	}
	return strings.Join(fields[:limit], " ") + Ellipsis
}

// cleanMarkdown strips markdown syntax so CountWords sees only display text.
func cleanMarkdown(markdown string) string {
	text := removeCodeBlocks(markdown)

	text = strings.ReplaceAll(text, "`", "")

	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "*", "")
	text = strings.ReplaceAll(text, "__", "")
	text = strings.ReplaceAll(text, "_", "")
	text = strings.ReplaceAll(text, "~~", "")

	text = strings.ReplaceAll(text, "#", "")

	lines := strings.Split(text, "\n")
	var cleanedLines []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "- ") {
			line = strings.TrimPrefix(line, "- ")
		} else if strings.HasPrefix(line, "* ") {
			line = strings.TrimPrefix(line, "* ")
		}
		// Numbered list markers (e.g. "1. ")
		if len(line) > 2 && unicode.IsDigit(rune(line[0])) && line[1] == '.' {
			line = line[2:]
		}
		cleanedLines = append(cleanedLines, line)
	}
	text = strings.Join(cleanedLines, " ")

	text = strings.ReplaceAll(text, ">", "")

	text = strings.ReplaceAll(text, "---", "")
	text = strings.ReplaceAll(text, "***", "")

	return text
}

func removeCodeBlocks(text string) string {
	for {
		start := strings.Index(text, "```")
		if start == -1 {
			break
		}
		end := strings.Index(text[start+3:], "```")
		if end == -1 {
			break
		}
		text = text[:start] + text[start+end+6:]
	}
	return text
}
