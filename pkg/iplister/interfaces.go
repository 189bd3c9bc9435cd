package iplister

import (
	"context"
	"io"
)

type (
	// Fetches raw ip list data from a webpage or a local file
	Reader interface {
		Data(context.Context) (io.ReadCloser, error)
	}

	// Parses the input containing ip list data and returns the entries
	Decoder interface {
		Decode(io.ReadCloser) ([]string, error)
	}
)
