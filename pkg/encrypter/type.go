package encrypter

import (
	"sync"

	"github.com/fernet/fernet-go"
)

// Tokens never expire.
const noTTL = -1

type implEncrypter struct {
	key string

	once   sync.Once
	keys   []*fernet.Key
	keyErr error
}
