package encrypter

// Encrypter decrypts secrets such as stored access tokens.
// Tokens are Fernet tokens written by the API service with the shared key.
// Implementations are safe for concurrent use.
type Encrypter interface {
	Decrypt(token string) (string, error)
}

// New creates a new Encrypter with a url-safe base64 Fernet key.
// An invalid key is reported by Decrypt; use ValidateKey to check it up front.
func New(key string) Encrypter {
	return &implEncrypter{key: key}
}
