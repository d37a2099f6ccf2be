package encryption

import (
	"bytes"
	"fmt"
)

// Pad appends NUL bytes to plainText until its length is a multiple of blockSize.
// Input that is already aligned, including empty input, is returned unchanged.
// The input slice is never modified. A non-positive blockSize disables padding.
func Pad(plainText []byte, blockSize int) []byte {
	out := make([]byte, len(plainText), len(plainText)+max(blockSize, 0))
	copy(out, plainText)

	if blockSize <= 0 {
		return out
	}

	if rem := len(plainText) % blockSize; rem != 0 {
		out = append(out, make([]byte, blockSize-rem)...)
	}

	return out
}

// TrimPadding removes trailing NUL bytes added by Pad.
// Plaintext that itself ends in NUL bytes cannot be told apart from padding.
func TrimPadding(data []byte) []byte {
	return bytes.TrimRight(data, "\x00")
}

// pkcs7Pad aligns data to the cipher block size with PKCS#7 padding.
// A full block is added when data is already aligned.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize

	out := make([]byte, len(data), len(data)+padding)
	copy(out, data)

	return append(out, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

// pkcs7Unpad removes PKCS#7 padding from the data.
// It returns an error if the padding is invalid.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	length := len(data)
	if length == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrInvalidPadding)
	}

	padding := int(data[length-1])
	if padding == 0 || padding > length || padding > blockSize {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidPadding, padding)
	}

	// Verify padding
	for i := length - padding; i < length; i++ {
		if data[i] != byte(padding) {
			return nil, ErrInvalidPadding
		}
	}

	return data[:length-padding], nil
}
