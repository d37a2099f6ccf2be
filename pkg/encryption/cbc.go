package encryption

import (
	"crypto/cipher"
	"fmt"
)

// encryptCBC aligns plain to the block size and encrypts it in CBC mode.
func encryptCBC(block cipher.Block, plain, iv []byte) ([]byte, error) {
	if len(iv) != block.BlockSize() {
		return nil, fmt.Errorf("%w: %w: expected %d, got %d", ErrCipherFailure, ErrInvalidIVSize, block.BlockSize(), len(iv))
	}

	aligned := pkcs7Pad(plain, block.BlockSize())

	ciphertext := make([]byte, len(aligned))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, aligned)

	return ciphertext, nil
}

// decryptCBC decrypts ciphertext in CBC mode and strips the block alignment.
func decryptCBC(block cipher.Block, ciphertext, iv []byte) ([]byte, error) {
	size := block.BlockSize()

	if len(iv) != size {
		return nil, fmt.Errorf("%w: %w: expected %d, got %d", ErrCipherFailure, ErrInvalidIVSize, size, len(iv))
	}

	if len(ciphertext) == 0 || len(ciphertext)%size != 0 {
		return nil, fmt.Errorf("%w: %w: length %d", ErrCipherFailure, ErrInvalidBlockSize, len(ciphertext))
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	unpadded, err := pkcs7Unpad(plain, size)
	if err != nil {
		return nil, fmt.Errorf("%w: removing block alignment: %w", ErrCipherFailure, err)
	}

	return unpadded, nil
}
