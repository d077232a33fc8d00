package hellopass

import (
	"errors"
	"strings"

	"github.com/bonjoski/hellopass/pkg/native"
)

// nativeStore adapts the platform credential store (Windows Credential
// Manager, or the OS keyring elsewhere) to the Store interface.
type nativeStore struct {
	service string
}

// NewNativeStore returns a Store backed by the platform credential store.
func NewNativeStore() Store {
	return &nativeStore{service: DefaultService}
}

func (s *nativeStore) Get(key string) ([]byte, error) {
	data, err := native.StoreGet(s.service, key)
	if err != nil {
		if errors.Is(err, native.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *nativeStore) Set(key string, value []byte) error {
	return native.StoreSet(s.service, key, value)
}

func (s *nativeStore) Delete(key string) error {
	return native.StoreDelete(s.service, key)
}

// nativeVerifier adapts the platform presence check (Windows Hello) to the
// Verifier interface.
type nativeVerifier struct{}

// NewNativeVerifier returns a Verifier backed by the platform presence check.
func NewNativeVerifier() Verifier {
	return nativeVerifier{}
}

func (nativeVerifier) Verify(reason string) error {
	return native.VerifyPresence(reason)
}

// ListSlots enumerates the passphrase slots currently cached in the platform
// store, excluding the session timestamp entry.
func ListSlots() ([]string, error) {
	keys, err := native.StoreList(DefaultService)
	if err != nil {
		return nil, err
	}
	prefix := CredPrefix + ":"
	var slots []string
	for _, key := range keys {
		if key == HelloTimestampKey || !strings.HasPrefix(key, prefix) {
			continue
		}
		slots = append(slots, strings.TrimPrefix(key, prefix))
	}
	return slots, nil
}
