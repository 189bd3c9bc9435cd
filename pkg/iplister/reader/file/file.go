package file

import (
	"context"
	"io"
	"os"

	apperrors "github.com/cf-utils/ipsync/pkg/errors"
)

type File struct {
	filename string
}

func New(filename string) *File {
	return &File{
		filename: filename,
	}
}

func (f *File) Data(ctx context.Context) (io.ReadCloser, error) {
	file, err := os.Open(f.filename)
	if err != nil {
		return nil, apperrors.NewFetchError(err)
	}

	return file, nil
}
