package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janhq/agent-memory-store/internal/domain/workflow"
)

func newWorkflowsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workflows",
		Aliases: []string{"wf"},
		Short:   "Inspect workflow runs",
	}

	getCmd := &cobra.Command{
		Use:   "get <execution-id>",
		Short: "Show the state of one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := opts.client().GetWorkflowState(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if state == nil {
				return fmt.Errorf("workflow run %q not found", args[0])
			}
			return render(cmd.OutOrStdout(), opts.output, state)
		},
	}

	var runs struct {
		workflow, status, from, to string
		limit, offset              int
	}
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "List runs newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := workflow.Status(runs.status)
			if status != "" && !status.Valid() {
				return fmt.Errorf("unknown status %q", runs.status)
			}
			from, err := parseTime("from", runs.from)
			if err != nil {
				return err
			}
			to, err := parseTime("to", runs.to)
			if err != nil {
				return err
			}
			params := workflow.QueryRunsParams{
				WorkflowID: runs.workflow,
				Status:     status,
				From:       from,
				To:         to,
				Offset:     runs.offset,
			}
			if cmd.Flags().Changed("limit") {
				params.Limit = &runs.limit
			}
			states, err := opts.client().QueryWorkflowRuns(cmd.Context(), params)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, states)
		},
	}
	runsCmd.Flags().StringVar(&runs.workflow, "workflow", "", "Workflow ID")
	runsCmd.Flags().StringVar(&runs.status, "status", "", "running, suspended, completed, cancelled or error")
	runsCmd.Flags().StringVar(&runs.from, "from", "", "Created at or after this RFC 3339 time")
	runsCmd.Flags().StringVar(&runs.to, "to", "", "Created at or before this RFC 3339 time")
	runsCmd.Flags().IntVar(&runs.limit, "limit", 0, "Page size (all runs when unset)")
	runsCmd.Flags().IntVar(&runs.offset, "offset", 0, "Rows to skip")

	suspendedCmd := &cobra.Command{
		Use:   "suspended <workflow-id>",
		Short: "List suspended runs of a workflow, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			states, err := opts.client().GetSuspendedWorkflows(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, states)
		},
	}

	cmd.AddCommand(getCmd, runsCmd, suspendedCmd)
	return cmd
}
