package main

import (
	"fmt"
	"os"
	"time"

	"github.com/bonjoski/hellopass/pkg/hellopass"
)

// Askpass contract: one prompt argument in, the secret on stdout and exit 0
// when released, nothing on stdout and a non-zero exit otherwise. The SSH
// client owns any retry.
func main() {
	prompt := "Enter SSH passphrase:"
	if len(os.Args) > 1 {
		if os.Args[1] == "--version" || os.Args[1] == "-v" {
			fmt.Printf("hellopass v%s\n", hellopass.Version)
			return
		}
		prompt = os.Args[1]
	}

	cfg, err := hellopass.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hellopass: %v\n", err)
		os.Exit(1)
	}

	gate, err := hellopass.NewFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hellopass: %v\n", err)
		os.Exit(1)
	}

	req := hellopass.Classify(prompt)
	res, err := gate.Resolve(req, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "hellopass: %v\n", err)
		os.Exit(1)
	}

	hellopass.NewNotifier(cfg).NotifyOutcome(req, res)

	if res.Outcome != hellopass.OutcomeRelease {
		os.Exit(1)
	}

	// No trailing newline: the SSH client reads the raw value
	fmt.Print(res.Secret)
}
