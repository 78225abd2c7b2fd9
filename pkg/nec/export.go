package nec

import (
	"github.com/matzehuels/lpda/pkg/errors"
)

// Export writes data to path atomically.
//
// The bytes go to a temporary file in the destination directory which is
// synced and renamed over path. On any failure the temporary file is removed,
// path is left untouched, and the error has code IO_ERROR.
func Export(path string, data []byte) error {
	if err := writeFile(path, data); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}
