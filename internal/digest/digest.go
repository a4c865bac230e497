// Package digest fingerprints derived frame products for content-addressed
// output names.
package digest

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ContentHash returns the xxHash64 of data as hex, truncated to hexLen
// characters when 0 < hexLen < 16.
func ContentHash(data []byte, hexLen int) string {
	full := fmt.Sprintf("%016x", xxhash.Sum64(data))
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}
