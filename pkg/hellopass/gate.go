package hellopass

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultService = "com.bonjoski.hellopass"

	// DefaultFreshnessWindow is how long a successful presence check keeps
	// releasing cached passphrases without asking again.
	DefaultFreshnessWindow = 5 * time.Minute
)

// ErrNotFound is returned by a Store when no value exists for a key.
var ErrNotFound = errors.New("secret not found")

// Store persists opaque values under string keys. Last write wins; the
// process is the only client for the duration of one invocation.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Verifier performs a blocking user-presence check. Any error means the
// check did not succeed; the gate never distinguishes why.
type Verifier interface {
	Verify(reason string) error
}

// Prompter shows modal prompts on the controlling terminal or desktop.
// ok=false means the user cancelled; a non-nil error means the prompt
// channel itself failed.
type Prompter interface {
	Password(message string) (value string, ok bool, err error)
	Confirm(message string) (yes bool, ok bool, err error)
}

// Gate decides, for one askpass invocation, whether a cached passphrase may
// be released, whether a presence re-check is required first, or whether the
// user must be prompted for a new one.
type Gate struct {
	Store    Store
	Verifier Verifier
	Prompter Prompter
	Window   time.Duration
}

// New builds a Gate against the platform credential store and verifier,
// configured from ~/.hellopass/config.yml.
func New() (*Gate, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg)
}

// NewFromConfig builds a Gate against the platform backends with settings
// taken from an already-loaded config.
func NewFromConfig(cfg *Config) (*Gate, error) {
	window, err := cfg.GetFreshnessWindow()
	if err != nil {
		return nil, fmt.Errorf("invalid freshness_window: %w", err)
	}
	return &Gate{
		Store:    NewNativeStore(),
		Verifier: NewNativeVerifier(),
		Prompter: NewTTYPrompter(),
		Window:   window,
	}, nil
}

// NewWithDeps builds a Gate with explicit collaborators.
func NewWithDeps(store Store, verifier Verifier, prompter Prompter, window time.Duration) *Gate {
	return &Gate{Store: store, Verifier: verifier, Prompter: prompter, Window: window}
}

// Resolve runs one request to a terminal outcome. The returned error is
// reserved for hard failures (a passphrase the user just typed could not be
// persisted, or the prompt channel broke); denial and cancellation are
// ordinary outcomes, not errors.
func (g *Gate) Resolve(req Request, now time.Time) (Result, error) {
	if req.Kind == HostKeyConfirmation {
		return g.confirmHostKey(req)
	}
	return g.resolvePassphrase(req, now)
}

// confirmHostKey never touches the store or verifier; host-key prompts share
// no state with the passphrase path.
func (g *Gate) confirmHostKey(req Request) (Result, error) {
	yes, ok, err := g.Prompter.Confirm(req.Prompt)
	if err != nil {
		return Result{}, fmt.Errorf("host key prompt: %w", err)
	}
	if !ok || !yes {
		return Result{Outcome: OutcomeCancelled}, nil
	}
	return Result{Outcome: OutcomeRelease, Secret: "yes"}, nil
}

func (g *Gate) resolvePassphrase(req Request, now time.Time) (Result, error) {
	secret, err := g.Store.Get(SecretKey(req.Slot))
	if err != nil {
		// Read failures degrade to the no-secret case: fail toward
		// prompting the user, never toward releasing blindly.
		return g.promptAndCache(req, now)
	}

	if !g.sessionFresh(now) {
		if err := g.Verifier.Verify("Unlock SSH key: " + req.Slot); err != nil {
			// The cached passphrase stays put; the failure may be transient.
			return Result{Outcome: OutcomeDenied}, nil
		}
		g.touchSession(now)
	}

	return Result{Outcome: OutcomeRelease, Secret: string(secret)}, nil
}

// sessionFresh reports whether the last successful presence check is recent
// enough to release without asking again. A missing, unparseable, or
// future-dated timestamp all count as stale.
func (g *Gate) sessionFresh(now time.Time) bool {
	raw, err := g.Store.Get(HelloTimestampKey)
	if err != nil {
		return false
	}
	verified, err := ParseTimestamp(raw)
	if err != nil {
		return false
	}
	age := now.Sub(verified)
	return age >= 0 && age <= g.Window
}

// touchSession records a successful presence check. Best effort: losing the
// write only means the next invocation re-verifies.
func (g *Gate) touchSession(now time.Time) {
	_ = g.Store.Set(HelloTimestampKey, EncodeTimestamp(now))
}

func (g *Gate) promptAndCache(req Request, now time.Time) (Result, error) {
	text, ok, err := g.Prompter.Password(req.Prompt)
	if err != nil {
		return Result{}, fmt.Errorf("passphrase prompt: %w", err)
	}
	if !ok {
		return Result{Outcome: OutcomeCancelled}, nil
	}
	if err := g.Store.Set(SecretKey(req.Slot), []byte(text)); err != nil {
		// A swallowed write failure would lose the passphrase the user
		// just typed.
		return Result{}, fmt.Errorf("caching passphrase: %w", err)
	}
	g.touchSession(now)
	return Result{Outcome: OutcomeRelease, Secret: text}, nil
}
