package nec

import "os"

// renameio has no Windows support, so the write is not atomic there.
func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
