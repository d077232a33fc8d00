package hellopass

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		wantKind RequestKind
		wantSlot string
	}{
		{
			name:     "unix key path",
			prompt:   "Enter passphrase for key '/home/user/.ssh/id_ed25519':",
			wantKind: PassphraseRequest,
			wantSlot: "id_ed25519",
		},
		{
			name:     "windows key path",
			prompt:   `Enter passphrase for key 'C:\Users\user\.ssh\id_rsa':`,
			wantKind: PassphraseRequest,
			wantSlot: "id_rsa",
		},
		{
			name:     "no quoted path",
			prompt:   "Enter SSH passphrase:",
			wantKind: PassphraseRequest,
			wantSlot: "default",
		},
		{
			name:     "unterminated quote",
			prompt:   "Enter passphrase for key '/home/user/.ssh/id_rsa",
			wantKind: PassphraseRequest,
			wantSlot: "default",
		},
		{
			name:     "empty quotes",
			prompt:   "Enter passphrase for key '':",
			wantKind: PassphraseRequest,
			wantSlot: "default",
		},
		{
			name:     "bare key name in quotes",
			prompt:   "Enter passphrase for key 'id_ecdsa':",
			wantKind: PassphraseRequest,
			wantSlot: "id_ecdsa",
		},
		{
			name:     "host key yes/no",
			prompt:   "Are you sure you want to continue connecting (yes/no)?",
			wantKind: HostKeyConfirmation,
		},
		{
			name:     "host key fingerprint, mixed case",
			prompt:   "ED25519 key Fingerprint is SHA256:abcdef.",
			wantKind: HostKeyConfirmation,
		},
		{
			name:     "empty prompt",
			prompt:   "",
			wantKind: PassphraseRequest,
			wantSlot: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Classify(tt.prompt)
			if req.Kind != tt.wantKind {
				t.Errorf("Expected kind %v, got %v", tt.wantKind, req.Kind)
			}
			if req.Slot != tt.wantSlot {
				t.Errorf("Expected slot %q, got %q", tt.wantSlot, req.Slot)
			}
			if req.Prompt != tt.prompt {
				t.Errorf("Prompt must be carried through unchanged, got %q", req.Prompt)
			}
		})
	}
}
