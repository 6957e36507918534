package formats

import "strings"

// Document is the tokenized form of a delimited export file: one header
// line, lower-cased and trimmed, followed by data rows.
type Document struct {
	Headers []string
	Rows    [][]string
}

// Tokenize splits raw delimited text into headers and rows.
//
// The double quote is the field quote: it toggles quote state on each
// occurrence, so delimiters and line breaks inside a quoted field belong to
// the field. A doubled quote inside a quoted field unescapes to one quote.
// `\r\n` counts as a single line break and blank lines are skipped. The
// delimiter is auto-selected from the first line, by presence, preferring
// tab over semicolon over comma.
func Tokenize(text string) Document {
	var lines []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			current.WriteByte(c)
		case (c == '\n' || c == '\r') && !inQuotes:
			if strings.TrimSpace(current.String()) != "" {
				lines = append(lines, current.String())
			}
			current.Reset()
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
		default:
			current.WriteByte(c)
		}
	}
	if strings.TrimSpace(current.String()) != "" {
		lines = append(lines, current.String())
	}

	if len(lines) == 0 {
		return Document{}
	}

	delimiter := detectDelimiter(lines[0])

	headers := splitLine(lines[0], delimiter)
	for i, h := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, splitLine(line, delimiter))
	}
	return Document{Headers: headers, Rows: rows}
}

func detectDelimiter(firstLine string) byte {
	switch {
	case strings.ContainsRune(firstLine, '\t'):
		return '\t'
	case strings.ContainsRune(firstLine, ';'):
		return ';'
	default:
		return ','
	}
}

// splitLine cuts one logical line into trimmed cells, honoring quotes and
// unescaping doubled quotes.
func splitLine(line string, delimiter byte) []string {
	var cells []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == delimiter && !inQuotes:
			cells = append(cells, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	cells = append(cells, strings.TrimSpace(current.String()))
	return cells
}
