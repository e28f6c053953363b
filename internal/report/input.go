package report

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
)

const compressedSuffix = ".xz"

type xzReadCloser struct {
	io.Reader
	file *os.File
}

func (x *xzReadCloser) Close() error {
	return x.file.Close()
}

// OpenInput opens a report file, decompressing it when the name ends in .xz.
func OpenInput(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, compressedSuffix) {
		return file, nil
	}
	r, err := xz.NewReader(file)
	if err != nil {
		file.Close()
		return nil, errors.Wrapf(err, "unable to read xz stream from %s", path)
	}
	return &xzReadCloser{Reader: r, file: file}, nil
}
