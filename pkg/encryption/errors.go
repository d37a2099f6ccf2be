package encryption

import "errors"

var (
	// ErrRandomnessUnavailable is returned when no acceptable randomness source produced a key or IV.
	ErrRandomnessUnavailable = errors.New("randomness unavailable")
	// ErrCipherFailure is returned when the block cipher rejects its inputs.
	ErrCipherFailure = errors.New("cipher failure")
	// ErrDecodeFailure is returned when the ciphertext is not valid base64.
	ErrDecodeFailure = errors.New("decode failure")

	// ErrInvalidKeySize is returned when the key length does not match the suite.
	ErrInvalidKeySize = errors.New("invalid key size")
	// ErrInvalidIVSize is returned when the IV length does not match the suite.
	ErrInvalidIVSize = errors.New("invalid IV size")
	// ErrInvalidPadding is returned when block alignment padding is malformed.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrInvalidBlockSize is returned when ciphertext length is not aligned with the cipher block size.
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of block size")
	// ErrUnknownSuite is returned for cipher names that are not registered.
	ErrUnknownSuite = errors.New("unknown cipher")
)
