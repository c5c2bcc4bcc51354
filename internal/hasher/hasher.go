// Package hasher produces short content fingerprints for embedded assets.
package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes the xxHash64 of data and returns a hex string
// truncated to hexLen characters. The embed manifest records 16 hex
// chars (64 bits), which is collision-safe for practical asset counts.
func Fingerprint(data []byte, hexLen int) string {
	full := hexString(xxhash.Sum64(data))
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}

// FingerprintReader computes the fingerprint from a reader, streaming.
func FingerprintReader(r io.Reader, hexLen int) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	full := hexString(h.Sum64())
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen], nil
	}
	return full, nil
}

func hexString(sum uint64) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], sum)
	return hex.EncodeToString(b[:])
}
