package encryption

//nolint:gochecknoglobals
var std = newDefault()

// Encrypt encrypts plainText with AES-256-CBC. See Encryptor.Encrypt.
func Encrypt(plainText, key, iv []byte) (string, error) {
	return std.Encrypt(plainText, key, iv)
}

// Decrypt decrypts base64 ciphertext with AES-256-CBC. See Encryptor.Decrypt.
func Decrypt(encoded string, key, iv []byte) ([]byte, error) {
	return std.Decrypt(encoded, key, iv)
}

// GenerateKey returns a new 32-byte key.
func GenerateKey() ([]byte, error) {
	return std.GenerateKey()
}

// GenerateIV returns a new 16-byte IV. See Encryptor.GenerateIV.
func GenerateIV(allowLessSecure bool) ([]byte, error) {
	return std.GenerateIV(allowLessSecure)
}
