package decode

import (
	"bufio"
	"io"
	"strings"
)

// TextDecoder handles plain text drafts. Bytes are decoded permissively:
// invalid UTF-8 sequences are dropped rather than rejected.
type TextDecoder struct{}

func (d *TextDecoder) Lines(r io.Reader, filename string) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(strings.NewReader(strings.ToValidUTF8(string(data), "")))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
