package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ccfrost/tubeflow/internal/auth"
	"github.com/ccfrost/tubeflow/internal/config"
	"github.com/ccfrost/tubeflow/internal/ledger"
	"github.com/ccfrost/tubeflow/internal/notify"
	"github.com/ccfrost/tubeflow/internal/runner"
	"github.com/ccfrost/tubeflow/internal/uploader"
	"github.com/spf13/cobra"
)

const tubeflow = "tubeflow"

func main() {
	var configPath string
	var cfg config.TubeflowConfig

	rootCmd := cobra.Command{
		Use:   tubeflow,
		Short: "Watch a folder and upload new videos to YouTube",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file")

	authCmd := cobra.Command{
		Use:   "auth",
		Short: "Run the interactive OAuth consent flow and store the credential",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			manual, err := cmd.Flags().GetBool("manual")
			if err != nil {
				fmt.Fprintln(os.Stderr, "error: invalid manual flag:", err)
				os.Exit(1)
			}

			ctx := context.Background()
			a, err := auth.NewAuthenticator(cfg.ClientSecretPath, cfg.TokenPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			a.Manual = manual

			client, err := a.Client(ctx, true)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			// Verify the credential with a read call before declaring success.
			if _, err := uploader.New(ctx, client); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			fmt.Println("Authenticated. Credential stored at", cfg.TokenPath)
		},
	}
	authCmd.Flags().Bool("manual", false, "Use the copy-paste code flow instead of a local browser callback")
	rootCmd.AddCommand(&authCmd)

	runCmd := cobra.Command{
		Use:   "run",
		Short: "Run one scan-and-upload pass",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			r, err := buildRunner(ctx, cfg)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			summary, err := r.Cycle(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			fmt.Printf("Done: %d candidate(s), %d uploaded, %d skipped, %d failed\n",
				summary.Candidates, summary.Uploaded, summary.Skipped, summary.Failed)
		},
	}
	rootCmd.AddCommand(&runCmd)

	watchCmd := cobra.Command{
		Use:   "watch",
		Short: "Scan and upload on a timer until interrupted",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err := runner.Watch(ctx, cfg.PollInterval, func(ctx context.Context) (*runner.Runner, error) {
				return buildRunner(ctx, cfg)
			})
			if errors.Is(err, context.Canceled) {
				fmt.Println("Interrupted, exiting.")
				return
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		},
	}
	rootCmd.AddCommand(&watchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// buildRunner wires one cycle's collaborators: non-interactive auth, a
// verified uploader, the ledger and the webhook notifier.
func buildRunner(ctx context.Context, cfg config.TubeflowConfig) (*runner.Runner, error) {
	a, err := auth.NewAuthenticator(cfg.ClientSecretPath, cfg.TokenPath)
	if err != nil {
		return nil, err
	}
	client, err := a.Client(ctx, false)
	if err != nil {
		return nil, err
	}
	up, err := uploader.New(ctx, client)
	if err != nil {
		return nil, err
	}
	led, err := ledger.Open(cfg.LedgerPath)
	if err != nil {
		return nil, err
	}
	return runner.New(cfg, led, up, notify.New(cfg.WebhookURL)), nil
}
