package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bonjoski/hellopass/pkg/hellopass"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hellopassctl",
		Short:         "Manage cached SSH passphrases and the hellopass verification session",
		Version:      hellopass.Version,
		SilenceUsage: true,
	}
	root.AddCommand(newListCmd(), newForgetCmd(), newResetCmd(), newMCPCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List key slots with a cached passphrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			slots, err := hellopass.ListSlots()
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				fmt.Println("No cached passphrases.")
				return nil
			}
			for _, slot := range slots {
				fmt.Println(slot)
			}
			return nil
		},
	}
}

func newForgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forget <slot>",
		Short: "Remove the cached passphrase for a key slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := hellopass.NewNativeStore()
			if err := store.Delete(hellopass.SecretKey(args[0])); err != nil {
				return fmt.Errorf("forgetting '%s': %w", args[0], err)
			}
			fmt.Printf("Forgot cached passphrase for '%s'\n", args[0])
			return nil
		},
	}
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the verification session so the next release re-verifies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := hellopass.NewNativeStore()
			if err := store.Delete(hellopass.HelloTimestampKey); err != nil {
				return fmt.Errorf("resetting session: %w", err)
			}
			fmt.Println("Verification session reset.")
			return nil
		},
	}
}

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve cache introspection tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMCP(cmd.Context())
		},
	}
}
