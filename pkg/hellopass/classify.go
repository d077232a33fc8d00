package hellopass

import "strings"

// Classify turns the raw prompt argument into a Request. OpenSSH host-key
// prompts always contain "yes/no" or the key fingerprint; everything else is
// treated as a passphrase request.
func Classify(prompt string) Request {
	lower := strings.ToLower(prompt)
	if strings.Contains(lower, "yes/no") || strings.Contains(lower, "fingerprint") {
		return Request{Kind: HostKeyConfirmation, Prompt: prompt}
	}
	return Request{Kind: PassphraseRequest, Prompt: prompt, Slot: extractSlot(prompt)}
}

// extractSlot pulls the key file name out of prompts like
// "Enter passphrase for key '/home/user/.ssh/id_ed25519':". Only the
// basename is kept so the slot is stable across WSL and Windows paths.
func extractSlot(prompt string) string {
	start := strings.IndexByte(prompt, '\'')
	if start < 0 {
		return "default"
	}
	end := strings.IndexByte(prompt[start+1:], '\'')
	if end < 0 {
		return "default"
	}
	path := prompt[start+1 : start+1+end]
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	if path == "" {
		return "default"
	}
	return path
}
