package textutil

import (
	"bytes"
	"testing"
)

func TestEncodingString(t *testing.T) {
	if got := UTF8.String(); got != "UTF-8" {
		t.Errorf("UTF8.String() = %q", got)
	}
	if got := UTF16LE.String(); got != "UTF-16-LE" {
		t.Errorf("UTF16LE.String() = %q", got)
	}
}

func TestUTF8_RoundTrip(t *testing.T) {
	samples := []string{"", "plain", "漢字", "tab\tand\nnewline", "\xff\xfe broken"}
	for _, s := range samples {
		if got := UTF8.Decode(UTF8.Encode(s)); got != s {
			t.Errorf("UTF8 round trip of %q = %q", s, got)
		}
	}
}

func TestUTF8_PreservesMalformedBytes(t *testing.T) {
	// Invalid UTF-8 survives encode/decode untouched.
	raw := "ok\xc3\x28end"
	enc := UTF8.Encode(raw)
	if !bytes.Equal(enc, []byte(raw)) {
		t.Errorf("UTF8.Encode(%q) = %q, want identity", raw, enc)
	}
	if got := UTF8.Decode(enc); got != raw {
		t.Errorf("UTF8.Decode round trip = %q, want %q", got, raw)
	}
}

func TestUTF16LE_Encode(t *testing.T) {
	got := UTF16LE.Encode("ab")
	want := []byte{'a', 0, 'b', 0}
	if !bytes.Equal(got, want) {
		t.Errorf("UTF16LE.Encode(ab) = %v, want %v", got, want)
	}
}

func TestUTF16LE_RoundTripValid(t *testing.T) {
	samples := []string{"", "ascii", "漢字", "mixed 漢 text", "𐍈 surrogate pair"}
	for _, s := range samples {
		if got := UTF16LE.Decode(UTF16LE.Encode(s)); got != s {
			t.Errorf("UTF16LE round trip of %q = %q", s, got)
		}
	}
}

func TestUTF16LE_PermissiveDecode(t *testing.T) {
	// An odd-length sequence is malformed; the decode must not fail,
	// only substitute.
	got := UTF16LE.Decode([]byte{'a', 0, 'b'})
	if got == "" {
		t.Error("permissive decode returned nothing")
	}
}

func TestRecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"valid untouched", "hello 漢", "hello 漢"},
		{"invalid dropped", "a\xffb", "ab"},
		{"all invalid", "\xff\xfe", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Recode(tt.in); got != tt.want {
				t.Errorf("Recode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
