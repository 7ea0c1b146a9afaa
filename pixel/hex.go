package pixel

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Hex is a packed 24-bit 0xRRGGBB color. In JSON it is written as the string "#RRGGBB".
type Hex uint32

func (h Hex) Color() Color {
	return FromHex(uint32(h))
}

func (h Hex) String() string {
	return fmt.Sprintf("#%06X", uint32(h))
}

func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Hex) UnmarshalJSON(data []byte) error {
	var text string
	err := json.Unmarshal(data, &text)
	if err != nil {
		return fmt.Errorf("unable to read hex color %s - %w", data, err)
	}

	value, err := ParseHex(text)
	if err != nil {
		return err
	}
	*h = value
	return nil
}

// ParseHex accepts "#RRGGBB", "0xRRGGBB" or a bare "RRGGBB".
func ParseHex(text string) (Hex, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(text, "#"), "0x")
	if len(digits) != 6 {
		return 0, fmt.Errorf("unable to parse hex color %q - expected 6 hex digits", text)
	}
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("unable to parse hex color %q - %w", text, err)
	}
	return Hex(value), nil
}
