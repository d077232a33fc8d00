package main

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bonjoski/hellopass/pkg/hellopass"
)

type listSlotsArgs struct{}

type listSlotsResult struct {
	Slots []string `json:"slots"`
}

type sessionStatusArgs struct{}

type sessionStatusResult struct {
	Verified   bool  `json:"verified"`
	AgeSeconds int64 `json:"age_seconds,omitempty"`
	Fresh      bool  `json:"fresh"`
}

type forgetSlotArgs struct {
	Slot string `json:"slot" jsonschema:"the key slot to forget"`
}

type forgetSlotResult struct {
	Forgotten bool `json:"forgotten"`
}

// newMCPServer exposes read-only cache introspection plus forget, so agent
// tooling can inspect the askpass cache without shelling out. The passphrase
// values themselves are never exposed.
func newMCPServer(window time.Duration) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "hellopassctl", Version: hellopass.Version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_slots",
		Description: "List SSH key slots that have a cached passphrase",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ listSlotsArgs) (*mcp.CallToolResult, listSlotsResult, error) {
		slots, err := hellopass.ListSlots()
		if err != nil {
			return nil, listSlotsResult{}, err
		}
		return nil, listSlotsResult{Slots: slots}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "session_status",
		Description: "Report whether the verification session is fresh",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ sessionStatusArgs) (*mcp.CallToolResult, sessionStatusResult, error) {
		return nil, sessionStatus(hellopass.NewNativeStore(), time.Now(), window), nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "forget_slot",
		Description: "Remove the cached passphrase for one key slot",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args forgetSlotArgs) (*mcp.CallToolResult, forgetSlotResult, error) {
		if args.Slot == "" {
			return nil, forgetSlotResult{}, errors.New("slot must not be empty")
		}
		if err := hellopass.NewNativeStore().Delete(hellopass.SecretKey(args.Slot)); err != nil {
			return nil, forgetSlotResult{}, err
		}
		return nil, forgetSlotResult{Forgotten: true}, nil
	})

	return server
}

func sessionStatus(store hellopass.Store, now time.Time, window time.Duration) sessionStatusResult {
	raw, err := store.Get(hellopass.HelloTimestampKey)
	if err != nil {
		return sessionStatusResult{}
	}
	verified, err := hellopass.ParseTimestamp(raw)
	if err != nil {
		return sessionStatusResult{}
	}
	age := now.Sub(verified)
	return sessionStatusResult{
		Verified:   true,
		AgeSeconds: int64(age.Seconds()),
		Fresh:      age >= 0 && age <= window,
	}
}

func runMCP(ctx context.Context) error {
	cfg, err := hellopass.LoadConfig()
	if err != nil {
		return err
	}
	window, err := cfg.GetFreshnessWindow()
	if err != nil {
		return err
	}
	return newMCPServer(window).Run(ctx, &mcp.StdioTransport{})
}
