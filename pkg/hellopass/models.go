package hellopass

// RequestKind classifies the single prompt argument an SSH client passes to
// an askpass program.
type RequestKind int

const (
	// PassphraseRequest asks for a key passphrase that may be cached.
	PassphraseRequest RequestKind = iota
	// HostKeyConfirmation asks the user to accept or reject a host key.
	HostKeyConfirmation
)

// Request is one classified askpass invocation.
type Request struct {
	Kind   RequestKind
	Prompt string
	// Slot names the logical passphrase slot, derived from the key path in
	// the prompt. Empty for host-key confirmations.
	Slot string
}

// Outcome is the terminal result of one resolution cycle.
type Outcome int

const (
	OutcomeRelease Outcome = iota
	OutcomeDenied
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRelease:
		return "release"
	case OutcomeDenied:
		return "denied"
	case OutcomeCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Result carries the outcome and, for OutcomeRelease only, the secret text
// to hand back to the SSH client.
type Result struct {
	Outcome Outcome
	Secret  string
}
