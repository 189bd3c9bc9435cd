package jsonlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	apperrors "github.com/cf-utils/ipsync/pkg/errors"
)

// JSONList extracts a string array from a named top-level field of a
// JSON document, for endpoints that publish their lists as JSON.
type JSONList struct {
	field string
}

func New(field string) *JSONList {
	return &JSONList{
		field: field,
	}
}

func (j *JSONList) Decode(data io.ReadCloser) ([]string, error) {
	var doc map[string]json.RawMessage

	if err := json.NewDecoder(data).Decode(&doc); err != nil {
		return nil, apperrors.NewParseError(err)
	}

	raw, ok := doc[j.field]
	if !ok {
		return nil, apperrors.NewParseError(fmt.Errorf("field %q not present in response", j.field))
	}

	var entries []string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, apperrors.NewParseError(err)
	}

	if len(entries) == 0 {
		return nil, apperrors.NewParseError(errors.New("no entries in response body"))
	}

	return entries, nil
}
