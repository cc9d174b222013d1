package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/emerald-city/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Emerald City SSH server",
	Long: `Start an SSH server that animates a walk for every visitor.

Each SSH connection gets its own city and walk, sized to the
visitor's terminal. Finished walks are recorded in the shared run
history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.emerald/host_key

Examples:
  emerald serve                           # Listen on :23234 with auto-generated key
  emerald serve --ssh :2222               # Listen on port 2222
  emerald serve --seed 42                 # Every visitor sees the same city

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger()

	scene, err := loadScene()
	if err != nil {
		fatal("%v", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Scene:       scene,
		Seed:        flagSeed,
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting Emerald City SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatal("server: %v", err)
	}
}
