package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zhubert/chatgate/internal/authstub"
	"github.com/zhubert/chatgate/internal/logger"
)

var (
	stubAddr       string
	stubSignatures []string
	stubNetworks   []string
	stubAnyOrigin  bool
)

var authstubCmd = &cobra.Command{
	Use:   "authstub",
	Short: "Serve a local stand-in for the authorization service",
	Long: `Runs a small HTTP server answering GET /api/valid-user?signature=...
the way the authorization service does:

  {"code": 0}    the signature is authorized
  {"code": 403}  the client address is outside --network
  {"code": 401}  the signature is not in --signature

Point the shell at it with --auth-endpoint http://127.0.0.1:8787/api/valid-user.`,
	RunE: runAuthStub,
}

func init() {
	authstubCmd.Flags().StringVar(&stubAddr, "addr", "127.0.0.1:8787", "Listen address")
	authstubCmd.Flags().StringSliceVar(&stubSignatures, "signature", nil, "Authorized signature (repeatable; none authorizes everyone)")
	authstubCmd.Flags().StringSliceVar(&stubNetworks, "network", nil, "Office network CIDR (repeatable; none disables the check)")
	authstubCmd.Flags().BoolVar(&stubAnyOrigin, "allow-all-origins", false, "Accept cross-origin requests from any origin")
	rootCmd.AddCommand(authstubCmd)
}

// stubConfig builds the server configuration from the flags
func stubConfig() (authstub.Config, error) {
	networks, err := authstub.ParseNetworks(stubNetworks)
	if err != nil {
		return authstub.Config{}, err
	}
	return authstub.Config{
		Addr:            stubAddr,
		Signatures:      stubSignatures,
		Networks:        networks,
		AllowAllOrigins: stubAnyOrigin,
	}, nil
}

func runAuthStub(cmd *cobra.Command, args []string) error {
	if err := logger.Init(logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer logger.Close()

	cfg, err := stubConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("authstub listening on http://%s%s\n", cfg.Addr, authstub.ValidUserPath)
	return authstub.New(cfg).ListenAndServe(ctx)
}
