package observability_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/agent-memory-store/internal/config"
	"github.com/janhq/agent-memory-store/internal/infrastructure/metrics"
	"github.com/janhq/agent-memory-store/internal/infrastructure/observability"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := observability.Setup(context.Background(), &config.Config{EnableTracing: true}, zerolog.Nop())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestOperationRecordsOutcome(t *testing.T) {
	ctx := context.Background()
	notFound := platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "missing", nil, "test")
	failure := errors.New("boom")

	cases := []struct {
		name    string
		err     error
		outcome string
	}{
		{"ok", nil, metrics.OutcomeOK},
		{"not found", notFound, metrics.OutcomeNotFound},
		{"failure", failure, metrics.OutcomeError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			counter := metrics.RepositoryOperationsTotal.WithLabelValues("observability_test", "find", tc.outcome)
			before := testutil.ToFloat64(counter)

			_, op := observability.StartOperation(ctx, "observability_test", "find")
			assert.Equal(t, tc.err, op.End(tc.err))

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}
