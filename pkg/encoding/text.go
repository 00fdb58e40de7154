// Package encoding normalizes text files written by other tools before they
// are parsed.
package encoding

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ToUTF8 decodes data to UTF-8. A leading byte order mark selects UTF-8 or
// UTF-16 (either endianness) and is removed; without one, data is taken as
// UTF-8 and invalid sequences are replaced.
func ToUTF8(data []byte) ([]byte, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	result, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, fmt.Errorf("decoding text: %w", err)
	}
	return result, nil
}
