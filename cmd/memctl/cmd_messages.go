package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janhq/agent-memory-store/internal/domain/message"
	"github.com/janhq/agent-memory-store/internal/domain/step"
)

func newMessagesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "messages",
		Aliases: []string{"msg"},
		Short:   "Inspect and clear message history",
	}

	var list struct {
		user          string
		limit         int
		before, after string
		roles         []string
	}
	listCmd := &cobra.Command{
		Use:   "list <conversation-id>",
		Short: "Show the most recent messages of a user, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			before, err := parseTime("before", list.before)
			if err != nil {
				return err
			}
			after, err := parseTime("after", list.after)
			if err != nil {
				return err
			}
			msgs, err := opts.client().GetMessages(cmd.Context(), message.GetParams{
				UserID:         list.user,
				ConversationID: args[0],
				Limit:          list.limit,
				Before:         before,
				After:          after,
				Roles:          list.roles,
			})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, msgs)
		},
	}
	listCmd.Flags().StringVar(&list.user, "user", "", "User ID")
	listCmd.Flags().IntVar(&list.limit, "limit", 0, "Window size (server default when 0)")
	listCmd.Flags().StringVar(&list.before, "before", "", "Only messages created before this RFC 3339 time")
	listCmd.Flags().StringVar(&list.after, "after", "", "Only messages created after this RFC 3339 time")
	listCmd.Flags().StringSliceVar(&list.roles, "role", nil, "Keep only these roles (repeatable)")
	_ = listCmd.MarkFlagRequired("user")

	var clearOpts struct {
		conversation string
	}
	clearCmd := &cobra.Command{
		Use:   "clear <user-id>",
		Short: "Delete a user's messages and steps, in one conversation or all of them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.client().ClearMessages(cmd.Context(), args[0], clearOpts.conversation)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, result)
		},
	}
	clearCmd.Flags().StringVar(&clearOpts.conversation, "conversation", "", "Limit to one conversation")

	cmd.AddCommand(listCmd, clearCmd)
	return cmd
}

func newStepsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "Inspect agent steps",
	}

	var list struct {
		user, operation string
		limit           int
	}
	listCmd := &cobra.Command{
		Use:   "list <conversation-id>",
		Short: "Show the steps of a user in a conversation by step index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list.limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			steps, err := opts.client().GetSteps(cmd.Context(), step.GetParams{
				UserID:         list.user,
				ConversationID: args[0],
				Limit:          list.limit,
				OperationID:    list.operation,
			})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, steps)
		},
	}
	listCmd.Flags().StringVar(&list.user, "user", "", "User ID")
	listCmd.Flags().StringVar(&list.operation, "operation", "", "Operation ID")
	listCmd.Flags().IntVar(&list.limit, "limit", 0, "Keep only the last N steps")
	_ = listCmd.MarkFlagRequired("user")

	cmd.AddCommand(listCmd)
	return cmd
}
