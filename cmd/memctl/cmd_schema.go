package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/janhq/agent-memory-store/internal/domain/conversation"
	"github.com/janhq/agent-memory-store/internal/domain/message"
	"github.com/janhq/agent-memory-store/internal/domain/step"
	"github.com/janhq/agent-memory-store/internal/domain/workflow"
	"github.com/janhq/agent-memory-store/internal/domain/workingmemory"
)

var schemaRecords = map[string]struct {
	title string
	value any
}{
	"conversation":   {"Conversation", &conversation.CreateParams{}},
	"message":        {"Message", &message.AddParams{}},
	"step":           {"Step", &step.Step{}},
	"working-memory": {"Working memory", &workingmemory.SetParams{}},
	"workflow-state": {"Workflow state", &workflow.State{}},
	"workflow-patch": {"Workflow state patch", &workflow.Patch{}},
}

func schemaNames() []string {
	names := make([]string, 0, len(schemaRecords))
	for name := range schemaRecords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema <record>",
		Short:     "Print the JSON Schema of a write payload",
		Long:      "Print the JSON Schema of a write payload. Records: " + strings.Join(schemaNames(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: schemaNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, ok := schemaRecords[args[0]]
			if !ok {
				return fmt.Errorf("unknown record %q (want one of %s)", args[0], strings.Join(schemaNames(), ", "))
			}
			schema := recordSchema(record.value)
			schema.Title = record.title

			data, err := schema.MarshalJSON()
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func recordSchema(v any) *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
		ExpandedStruct:            true,
	}
	return reflector.Reflect(v)
}
