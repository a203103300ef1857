package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/janhq/agent-memory-store/internal/client/memoryclient"
)

func addPagingFlags(cmd *cobra.Command, limit, offset *int, orderBy, direction *string) {
	cmd.Flags().IntVar(limit, "limit", 0, "Page size (server default when 0)")
	cmd.Flags().IntVar(offset, "offset", 0, "Rows to skip")
	cmd.Flags().StringVar(orderBy, "order-by", "", "createdAt, updatedAt or title")
	cmd.Flags().StringVar(direction, "direction", "", "ASC or DESC")
}

func listOptions(limit, offset int, orderBy, direction string) memoryclient.ListOptions {
	return memoryclient.ListOptions{
		Limit:          limit,
		Offset:         offset,
		OrderBy:        orderBy,
		OrderDirection: direction,
	}
}

// parseTime accepts RFC 3339 timestamps. An empty value is nil.
func parseTime(name, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, fmt.Errorf("--%s: expected an RFC 3339 timestamp: %w", name, err)
	}
	return &t, nil
}
