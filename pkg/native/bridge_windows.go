//go:build windows
// +build windows

package native

import (
	"errors"
	"fmt"

	"github.com/danieljoos/wincred"
	"github.com/julian-bruyers/winhello-go"
)

func StoreGet(service, key string) ([]byte, error) {
	cred, err := wincred.GetGenericCredential(service + ":" + key)
	if err != nil {
		if errors.Is(err, wincred.ErrElementNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cred.CredentialBlob, nil
}

func StoreSet(service, key string, data []byte) error {
	cred := wincred.NewGenericCredential(service + ":" + key)
	cred.CredentialBlob = data
	cred.Persist = wincred.PersistLocalMachine

	return cred.Write()
}

func StoreDelete(service, key string) error {
	cred, err := wincred.GetGenericCredential(service + ":" + key)
	if err != nil {
		if errors.Is(err, wincred.ErrElementNotFound) {
			return nil // Already deleted
		}
		return err
	}

	return cred.Delete()
}

func StoreList(service string) ([]string, error) {
	creds, err := wincred.List()
	if err != nil {
		return nil, err
	}

	var keys []string
	prefix := service + ":"
	for _, cred := range creds {
		if cred.TargetName != "" && len(cred.TargetName) > len(prefix) && cred.TargetName[:len(prefix)] == prefix {
			keys = append(keys, cred.TargetName[len(prefix):])
		}
	}

	return keys, nil
}

func VerifyPresence(reason string) error {
	if !winhello.Available() {
		return ErrVerifyUnavailable
	}

	success, err := winhello.Authenticate(reason)
	if err != nil {
		return fmt.Errorf("Windows Hello authentication failed: %w", err)
	}
	if !success {
		return errors.New("Windows Hello authentication was denied")
	}
	return nil
}
