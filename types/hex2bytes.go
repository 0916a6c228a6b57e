package types

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// HexBytes is a byte slice that marshals to JSON as a 0x-prefixed hex
// string and unmarshals from either a hex or base64 string, matching the
// shapes the Beacon API and fixture files both use for raw byte fields.
type HexBytes []byte

func HexToBytes(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

func (b HexBytes) String() string {
	return "0x" + hex.EncodeToString(b)
}

func (b HexBytes) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

func (b *HexBytes) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("types: invalid quoted string %s", data)
	}
	val := string(data[1 : len(data)-1])

	if looksLikeHex(val) {
		decoded, err := HexToBytes(val)
		if err != nil {
			return fmt.Errorf("types: decode hex: %w", err)
		}
		*b = decoded
		return nil
	}

	decoded, err := base64.StdEncoding.DecodeString(val)
	if err != nil {
		return fmt.Errorf("types: decode base64: %w", err)
	}
	*b = decoded
	return nil
}

func looksLikeHex(s string) bool {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 != 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		isDigit := c >= '0' && c <= '9'
		isLower := c >= 'a' && c <= 'f'
		isUpper := c >= 'A' && c <= 'F'
		if !isDigit && !isLower && !isUpper {
			return false
		}
	}
	return true
}
