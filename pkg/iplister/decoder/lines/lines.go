package lines

import (
	"bufio"
	"errors"
	"io"
	"strings"

	apperrors "github.com/cf-utils/ipsync/pkg/errors"
)

// Lines decodes plain-text list bodies, one entry per line. Blank
// lines and # comments are skipped; entry order is preserved.
type Lines struct{}

func New() *Lines {
	return &Lines{}
}

func (l *Lines) Decode(data io.ReadCloser) ([]string, error) {
	entries := []string{}

	scanner := bufio.NewScanner(data)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entries = append(entries, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, apperrors.NewParseError(err)
	}

	if len(entries) == 0 {
		return nil, apperrors.NewParseError(errors.New("no entries in response body"))
	}

	return entries, nil
}
