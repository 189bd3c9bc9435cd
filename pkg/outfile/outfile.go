// Package outfile writes list snapshots with whole-file-replacement
// semantics: a reader of the target path sees either the previous
// complete snapshot or the new one, never a partial write.
package outfile

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/cf-utils/ipsync/pkg/errors"
)

// WriteLines replaces path with the given entries, one per line. The
// content is staged in a temp file in the same directory and renamed
// over the target, so a failure leaves the previous content intact.
func WriteLines(path string, lines []string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-")
	if err != nil {
		return apperrors.NewWriteError(err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			tmp.Close()
			return apperrors.NewWriteError(err)
		}
	}

	if err := w.Flush(); err != nil {
		tmp.Close()
		return apperrors.NewWriteError(err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return apperrors.NewWriteError(err)
	}

	if err := tmp.Close(); err != nil {
		return apperrors.NewWriteError(err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return apperrors.NewWriteError(err)
	}

	return nil
}

// ReadLines returns the entries of a previously written snapshot in
// file order.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines := []string{}
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}
