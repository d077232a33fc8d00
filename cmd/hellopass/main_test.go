package main

import "testing"

// TestMain verifies the hellopass binary compiles correctly.
// Full integration testing requires a credential store and a presence check
// (Windows Hello), which cannot be automated in CI/CD environments.
func TestMain(t *testing.T) {
	// Verify the package compiles
	t.Log("hellopass askpass binary compiles successfully")
}

// Note: Real testing of this binary requires:
// 1. A platform credential store (Credential Manager or OS keyring)
// 2. Windows Hello for the presence check
// 3. A controlling terminal for the prompts
// The decision logic itself is covered by the pkg/hellopass gate tests.
