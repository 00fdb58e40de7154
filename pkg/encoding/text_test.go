package encoding

import (
	"testing"
)

func TestToUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain", []byte(`{"a":1}`), `{"a":1}`},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, `{"a":1}`...), `{"a":1}`},
		{"utf16le bom", []byte{0xFF, 0xFE, 'o', 0, 'k', 0}, "ok"},
		{"utf16be bom", []byte{0xFE, 0xFF, 0, 'o', 0, 'k'}, "ok"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUTF8(tt.in)
			if err != nil {
				t.Fatalf("ToUTF8() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("ToUTF8() = %q, want %q", got, tt.want)
			}
		})
	}
}
