package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConversationsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "conversations",
		Aliases: []string{"conv"},
		Short:   "Inspect and delete conversations",
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := opts.client().GetConversation(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if conv == nil {
				return fmt.Errorf("conversation %q not found", args[0])
			}
			return render(cmd.OutOrStdout(), opts.output, conv)
		},
	}

	var list struct {
		user, resource     string
		limit, offset      int
		orderBy, direction string
	}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the conversations of a user or a resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			switch {
			case list.user != "":
				convs, err := client.ListConversationsByUser(cmd.Context(), list.user, listOptions(list.limit, list.offset, list.orderBy, list.direction))
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.output, convs)
			case list.resource != "":
				convs, err := client.ListConversationsByResource(cmd.Context(), list.resource)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.output, convs)
			}
			return fmt.Errorf("one of --user or --resource is required")
		},
	}
	listCmd.Flags().StringVar(&list.user, "user", "", "User ID")
	listCmd.Flags().StringVar(&list.resource, "resource", "", "Resource ID")
	addPagingFlags(listCmd, &list.limit, &list.offset, &list.orderBy, &list.direction)

	var query struct {
		user, resource     string
		limit, offset      int
		orderBy, direction string
	}
	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Query conversations by any combination of user and resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			convs, err := opts.client().QueryConversations(cmd.Context(), query.user, query.resource,
				listOptions(query.limit, query.offset, query.orderBy, query.direction))
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, convs)
		},
	}
	queryCmd.Flags().StringVar(&query.user, "user", "", "User ID")
	queryCmd.Flags().StringVar(&query.resource, "resource", "", "Resource ID")
	addPagingFlags(queryCmd, &query.limit, &query.offset, &query.orderBy, &query.direction)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a conversation with its messages and steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.client().DeleteConversation(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted conversation %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(getCmd, listCmd, queryCmd, deleteCmd)
	return cmd
}
