package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/janhq/agent-memory-store/internal/client/memoryclient"
)

var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	server  string
	output  string
	timeout time.Duration
}

func (o *rootOptions) client() *memoryclient.Client {
	return memoryclient.NewClient(o.server,
		memoryclient.WithTimeout(o.timeout),
		memoryclient.WithRetry(2, 200*time.Millisecond),
	)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "memctl",
		Short: "Inspect and maintain an agent memory store",
		Long: `memctl talks to a running memory store over its HTTP API.

Examples:
  memctl conversations list --user u1
  memctl messages list c1 --user u1 --limit 20
  memctl memory get --scope user --user u1
  memctl workflows suspended research-flow -o table
  memctl schema workflow-state`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateFormat(opts.output)
		},
	}

	defaultServer := os.Getenv("MEMORY_STORE_URL")
	if defaultServer == "" {
		defaultServer = "http://localhost:8190"
	}
	rootCmd.PersistentFlags().StringVarP(&opts.server, "server", "s", defaultServer, "Memory store base URL (env MEMORY_STORE_URL)")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", formatYAML, "Output format: yaml, json, table")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Per-request timeout")

	rootCmd.AddCommand(newConversationsCmd(opts))
	rootCmd.AddCommand(newMessagesCmd(opts))
	rootCmd.AddCommand(newStepsCmd(opts))
	rootCmd.AddCommand(newMemoryCmd(opts))
	rootCmd.AddCommand(newWorkflowsCmd(opts))
	rootCmd.AddCommand(newSchemaCmd())
	return rootCmd
}
