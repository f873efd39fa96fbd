package cart

import (
	"crypto/rand"
	"encoding/hex"
)

const guestKey = "guest_id"

// Identity issues the opaque guest id that correlates a storage scope
// to its server-side favorites. The id is minted once and never
// rotates; clearing the storage is the only way to lose it.
type Identity struct {
	storage Storage
}

func NewIdentity(storage Storage) *Identity {
	return &Identity{storage: storage}
}

// GetOrCreate returns the stored guest id, generating and persisting a
// fresh one on first use. If storage is unavailable the error is
// surfaced and favorites stay unusable for the session.
func (i *Identity) GetOrCreate() (string, error) {
	id, err := i.storage.Get(guestKey)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}
	id = "guest_" + randomHex(16)
	if err := i.storage.Set(guestKey, id); err != nil {
		return "", err
	}
	return id, nil
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(b)
}
