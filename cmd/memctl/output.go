package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/janhq/agent-memory-store/internal/domain/conversation"
	"github.com/janhq/agent-memory-store/internal/domain/workflow"
)

const (
	formatYAML  = "yaml"
	formatJSON  = "json"
	formatTable = "table"
)

func validateFormat(format string) error {
	switch format {
	case formatYAML, formatJSON, formatTable:
		return nil
	}
	return fmt.Errorf("unsupported output format %q (want yaml, json or table)", format)
}

// render writes v in the requested format. Records without a table layout fall back to YAML.
func render(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatTable:
		if ok, err := renderTable(w, v); ok || err != nil {
			return err
		}
	}
	return renderYAML(w, v)
}

// renderYAML goes through JSON so field names and key order match the API.
func renderYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return err
	}
	blockStyle(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return err
	}
	return enc.Close()
}

// blockStyle drops the flow and quoting styles JSON input is parsed with. The encoder still
// quotes strings that would otherwise read as another type.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		blockStyle(child)
	}
}

func renderTable(w io.Writer, v any) (bool, error) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	switch rows := v.(type) {
	case []*conversation.Conversation:
		fmt.Fprintln(tw, "ID\tUSER\tRESOURCE\tTITLE\tUPDATED")
		for _, c := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, dash(c.UserID), dash(c.ResourceID), dash(c.Title), c.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
	case []*workflow.State:
		fmt.Fprintln(tw, "EXECUTION\tWORKFLOW\tSTATUS\tCREATED\tUPDATED")
		for _, s := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.WorkflowID, statusLabel(s.Status), s.CreatedAt.Format("2006-01-02 15:04:05"), s.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
	case *workflow.State:
		if rows == nil {
			return false, nil
		}
		return renderTable(w, []*workflow.State{rows})
	default:
		return false, nil
	}
	return true, tw.Flush()
}

func statusLabel(status workflow.Status) string {
	label := strings.ToUpper(string(status))
	switch status {
	case workflow.StatusRunning:
		return color.New(color.FgHiBlue).Sprint(label)
	case workflow.StatusSuspended:
		return color.New(color.FgYellow).Sprint(label)
	case workflow.StatusCompleted:
		return color.New(color.FgHiGreen).Sprint(label)
	case workflow.StatusError:
		return color.New(color.FgRed).Sprint(label)
	default:
		return color.New(color.FgHiBlack).Sprint(label)
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
