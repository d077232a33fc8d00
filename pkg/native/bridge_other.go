//go:build !windows
// +build !windows

package native

import (
	"errors"

	"github.com/zalando/go-keyring"
)

func StoreGet(service, key string) ([]byte, error) {
	value, err := keyring.Get(service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

func StoreSet(service, key string, data []byte) error {
	return keyring.Set(service, key, string(data))
}

func StoreDelete(service, key string) error {
	err := keyring.Delete(service, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

func StoreList(service string) ([]string, error) {
	// go-keyring has no enumeration API; only the Windows backend can list.
	return nil, errors.New("listing secrets is not supported by the keyring backend")
}

func VerifyPresence(reason string) error {
	return ErrVerifyUnavailable
}
