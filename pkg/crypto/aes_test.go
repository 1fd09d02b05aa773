package crypto

import (
	"strings"
	"testing"
)

const testKeyHex = "6368616e676520746869732070617373776f726420746f206120736563726574"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key, err := KeyFromHex(testKeyHex)
	if err != nil {
		t.Fatalf("KeyFromHex: %v", err)
	}

	plaintext := "+966501234567"
	enc, err := Encrypt(key, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if enc == plaintext {
		t.Fatal("ciphertext equals plaintext")
	}

	dec, err := Decrypt(key, enc)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if dec != plaintext {
		t.Errorf("got %q, want %q", dec, plaintext)
	}

	// Random nonce: same plaintext must not produce the same ciphertext.
	enc2, err := Encrypt(key, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if enc == enc2 {
		t.Error("two encryptions produced identical ciphertext")
	}
}

func TestKeyFromHexRejectsBadKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"not hex", "zz" + testKeyHex[2:]},
		{"too short", testKeyHex[:32]},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := KeyFromHex(tt.key); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestDecryptRejectsTampering(t *testing.T) {
	key, _ := KeyFromHex(testKeyHex)

	if _, err := Decrypt(key, "AA"); err == nil {
		t.Error("short ciphertext accepted")
	}

	enc, err := Encrypt(key, "secret")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	tampered := strings.Replace(enc, enc[10:11], pick(enc[10:11]), 1)
	if _, err := Decrypt(key, tampered); err == nil {
		t.Error("tampered ciphertext accepted")
	}
}

func pick(s string) string {
	if s == "A" {
		return "B"
	}
	return "A"
}
