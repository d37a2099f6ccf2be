// Package encryption encrypts and decrypts strings with AES in CBC mode.
//
// Plaintext is padded with NUL bytes to a multiple of 8 before encryption and
// the ciphertext is returned as standard base64. Decrypt returns the padded
// plaintext as-is; use TrimPadding when the trailing NUL bytes are unwanted.
//
// Keys are 32 random bytes for the default AES-256-CBC suite. IVs are 16 bytes
// drawn from the fallback chain in package random, and are not secret: store
// them next to the ciphertext, ideally one per record.
package encryption
