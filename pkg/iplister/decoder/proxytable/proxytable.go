package proxytable

import (
	"errors"
	"io"
	"regexp"

	apperrors "github.com/cf-utils/ipsync/pkg/errors"
)

// Free proxy list sites publish their entries as an HTML table with
// adjacent address and port cells.
var rowPattern = regexp.MustCompile(`<td>(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})</td><td>(\d+)</td>`)

// ProxyTable extracts ip:port entries from an HTML proxy table.
type ProxyTable struct{}

func New() *ProxyTable {
	return &ProxyTable{}
}

func (p *ProxyTable) Decode(data io.ReadCloser) ([]string, error) {
	body, err := io.ReadAll(data)
	if err != nil {
		return nil, apperrors.NewParseError(err)
	}

	matches := rowPattern.FindAllStringSubmatch(string(body), -1)
	if len(matches) == 0 {
		return nil, apperrors.NewParseError(errors.New("no proxy entries in response body"))
	}

	entries := make([]string, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, m[1]+":"+m[2])
	}

	return entries, nil
}
