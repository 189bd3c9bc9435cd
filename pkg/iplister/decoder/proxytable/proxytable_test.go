package proxytable

import (
	"io"
	"strings"
	"testing"

	apperrors "github.com/cf-utils/ipsync/pkg/errors"
	"github.com/stretchr/testify/assert"
)

const testTable = `<html><body><table>
<tr><th>IP Address</th><th>Port</th></tr>
<tr><td>203.0.113.7</td><td>8080</td><td>US</td></tr>
<tr><td>198.51.100.23</td><td>3128</td><td>DE</td></tr>
</table></body></html>`

func newMockReadCloser(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func TestDecode(t *testing.T) {
	t.Parallel()

	p := New()
	got, err := p.Decode(newMockReadCloser(testTable))

	assert.NoError(t, err)
	assert.Equal(t, []string{"203.0.113.7:8080", "198.51.100.23:3128"}, got)
}

func TestDecodeNoEntries(t *testing.T) {
	t.Parallel()

	p := New()
	got, err := p.Decode(newMockReadCloser("<html><body>maintenance</body></html>"))

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, apperrors.IsKind(err, apperrors.KindParse))
}
