package hellopass

import (
	"fmt"
	"strconv"
	"time"
)

const (
	// CredPrefix namespaces every key this program writes to the credential
	// store. Changing it orphans previously cached passphrases.
	CredPrefix = "hellopass"

	// HelloTimestampKey holds the time of the last successful presence
	// check, shared across all passphrase slots.
	HelloTimestampKey = CredPrefix + ":hello-timestamp"
)

// SecretKey returns the store key for a passphrase slot.
func SecretKey(slot string) string {
	return CredPrefix + ":" + slot
}

// EncodeTimestamp serializes a time as decimal unix seconds.
func EncodeTimestamp(t time.Time) []byte {
	return []byte(strconv.FormatInt(t.Unix(), 10))
}

// ParseTimestamp is the inverse of EncodeTimestamp.
func ParseTimestamp(raw []byte) (time.Time, error) {
	secs, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", raw, err)
	}
	return time.Unix(secs, 0), nil
}
