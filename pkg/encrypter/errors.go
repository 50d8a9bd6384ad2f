package encrypter

import "errors"

var (
	ErrInvalidKey       = errors.New("encryption key must be 32 bytes of url-safe base64")
	ErrDecryptionFailed = errors.New("decryption failed: invalid token or key")
)
