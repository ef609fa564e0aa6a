// Package gcrypt implements the chained XOR stream used to obfuscate GVAS
// savegame payloads.
//
// Each byte's keystream is a fixed key byte XORed with the ciphertext byte 32
// positions earlier, or with a fixed prefix byte for the first 32 positions.
// This is obfuscation with public constants, not encryption: anyone holding
// this package can read and forge payloads.
package gcrypt

const (
	KeySize = 32
)

var prefixMagic = [KeySize]byte{
	0x71, 0x34, 0x36, 0xB3, 0x56, 0x63, 0x25, 0x5F,
	0xEA, 0xE2, 0x83, 0x73, 0xF4, 0x98, 0xB8, 0x18,
	0x2E, 0xE5, 0x42, 0x2E, 0x50, 0xA2, 0x0F, 0x49,
	0x87, 0x24, 0xE6, 0x65, 0x9A, 0xF0, 0x7C, 0xD7,
}

var xorMagic = [KeySize]byte{
	0x7C, 0x07, 0x69, 0x83, 0x31, 0x7E, 0x0C, 0x82,
	0x5F, 0x2E, 0x36, 0x7F, 0x76, 0xB4, 0xA2, 0x71,
	0x38, 0x2B, 0x6E, 0x87, 0x39, 0x05, 0x02, 0xC6,
	0xCD, 0xD8, 0xB1, 0xCC, 0xA1, 0x33, 0xF9, 0xB6,
}

// keystream returns the byte XORed into position i, given the ciphertext
// that precedes it.
func keystream(ciphertext []byte, i int) byte {
	b := byte(0)
	if i < KeySize {
		b = prefixMagic[i]
	} else {
		b = ciphertext[i-KeySize]
	}
	return b ^ xorMagic[i%KeySize]
}

// Decrypt returns the plaintext of ciphertext. The input is not modified.
//
// The loop runs from the end towards the start. Position i only needs the
// ciphertext at i-32, which is still available in the input.
func Decrypt(ciphertext []byte) []byte {
	plaintext := make([]byte, len(ciphertext))
	for i := len(ciphertext) - 1; i >= 0; i-- {
		plaintext[i] = ciphertext[i] ^ keystream(ciphertext, i)
	}
	return plaintext
}

// Encrypt returns the ciphertext of plaintext. The input is not modified.
//
// The loop runs from the start towards the end, since position i needs the
// ciphertext at i-32, which exists only once it has been produced.
func Encrypt(plaintext []byte) []byte {
	ciphertext := make([]byte, len(plaintext))
	for i := range plaintext {
		ciphertext[i] = plaintext[i] ^ keystream(ciphertext, i)
	}
	return ciphertext
}
