package video

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// CalculateCRC32 calculates the CRC32 checksum of a file. When progress is
// non-nil every byte read is also written to it.
func CalculateCRC32(filename string, progress io.Writer) (uint32, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	h := crc32.NewIEEE()
	var w io.Writer = h
	if progress != nil {
		w = io.MultiWriter(h, progress)
	}

	if _, err := io.Copy(w, f); err != nil {
		return 0, fmt.Errorf("failed to calculate hash: %w", err)
	}

	return h.Sum32(), nil
}

// FileID formats a checksum as eight upper-case hex digits
func FileID(crc uint32) string {
	return fmt.Sprintf("%08X", crc)
}
