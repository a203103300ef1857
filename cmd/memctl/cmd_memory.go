package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/janhq/agent-memory-store/internal/domain/workingmemory"
)

func newMemoryCmd(opts *rootOptions) *cobra.Command {
	var scope struct {
		scope, conversation, user string
	}
	params := func() workingmemory.Params {
		return workingmemory.Params{
			Scope:          workingmemory.Scope(scope.scope),
			ConversationID: scope.conversation,
			UserID:         scope.user,
		}
	}

	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Read and write scoped working memory",
	}
	cmd.PersistentFlags().StringVar(&scope.scope, "scope", string(workingmemory.ScopeConversation), "conversation or user")
	cmd.PersistentFlags().StringVar(&scope.conversation, "conversation", "", "Conversation ID for the conversation scope")
	cmd.PersistentFlags().StringVar(&scope.user, "user", "", "User ID for the user scope")

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Print the stored working memory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := opts.client().GetWorkingMemory(cmd.Context(), params())
			if err != nil {
				return err
			}
			if content == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "no working memory stored")
				return nil
			}
			if opts.output == formatJSON {
				return render(cmd.OutOrStdout(), opts.output, map[string]string{"content": *content})
			}
			_, err = io.WriteString(cmd.OutOrStdout(), *content+"\n")
			return err
		},
	}

	var set struct {
		file string
	}
	setCmd := &cobra.Command{
		Use:   "set [content]",
		Short: "Store working memory from an argument, a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(cmd.InOrStdin(), set.file, args)
			if err != nil {
				return err
			}
			result, err := opts.client().SetWorkingMemory(cmd.Context(), workingmemory.SetParams{Params: params(), Content: content})
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("scope %q needs its id flag", scope.scope)
			}
			return render(cmd.OutOrStdout(), opts.output, result)
		},
	}
	setCmd.Flags().StringVarP(&set.file, "file", "f", "", "Read content from a file (- for stdin)")

	rmCmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove"},
		Short:   "Remove the stored working memory",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.client().RemoveWorkingMemory(cmd.Context(), params())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, result)
		},
	}

	cmd.AddCommand(getCmd, setCmd, rmCmd)
	return cmd
}

func readContent(stdin io.Reader, file string, args []string) (string, error) {
	switch {
	case len(args) == 1 && file != "":
		return "", fmt.Errorf("pass content as an argument or with --file, not both")
	case len(args) == 1:
		return args[0], nil
	case file == "-":
		data, err := io.ReadAll(stdin)
		return string(data), err
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("content is required")
}
