package encrypter

import (
	"fmt"

	"github.com/fernet/fernet-go"
)

// ValidateKey reports whether key is a usable Fernet key.
func ValidateKey(key string) error {
	if _, err := fernet.DecodeKey(key); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return nil
}

func (e *implEncrypter) loadKeys() ([]*fernet.Key, error) {
	e.once.Do(func() {
		k, err := fernet.DecodeKey(e.key)
		if err != nil {
			e.keyErr = fmt.Errorf("%w: %w", ErrInvalidKey, err)
			return
		}
		e.keys = []*fernet.Key{k}
	})
	return e.keys, e.keyErr
}

func (e *implEncrypter) Decrypt(token string) (string, error) {
	keys, err := e.loadKeys()
	if err != nil {
		return "", err
	}
	plaintext := fernet.VerifyAndDecrypt([]byte(token), noTTL, keys)
	if plaintext == nil {
		return "", ErrDecryptionFailed
	}
	return string(plaintext), nil
}
