package utils

import (
	"crypto/md5"
	"fmt"
)

// HashBytes returns the hex md5 digest of the concatenated inputs.
// Used for cache keys, not for anything security sensitive.
func HashBytes(inputs ...[]byte) string {
	h := md5.New()
	for _, in := range inputs {
		h.Write(in)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func HashString(input string) string {
	return HashBytes([]byte(input))
}
