package qoi

import (
	"fmt"
	"io"
	"os"
)

// DecodeFile opens and decodes the QOI file at path. OS-level failures are
// mapped to the error kinds of errors.go: a missing or unreadable file
// becomes ErrPermissions, a short read becomes ErrFileContent.
func DecodeFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPermissions, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileContent, err)
	}

	return Decode(data)
}

// EncodeFile encodes img and writes it to path, creating or truncating the
// file. A failure to create the file is reported as ErrPermissions; a
// failure to write the full stream (including a simulated ENOSPC) is
// reported as ErrDiskSpace.
func EncodeFile(path string, img *Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPermissions, err)
	}
	defer f.Close()

	data, err := EncodeImage(img)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrDiskSpace, err)
	}

	return nil
}
