package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rileyhilliard/crmdash/internal/config"
	"github.com/rileyhilliard/crmdash/internal/crm"
	"github.com/rileyhilliard/crmdash/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededConfig(seed uint64) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Sampler.Seed = seed
	return cfg
}

func TestSnapshotCommand_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, snapshotCommand(&buf, seededConfig(42), true))

	var env struct {
		Success bool           `json:"success"`
		Data    SnapshotOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	assert.True(t, env.Success)
	assert.Equal(t, uint64(42), env.Data.Seed)
	require.NotNil(t, env.Data.Snapshot)
	assert.True(t, env.Data.Snapshot.InBounds())
	assert.Len(t, env.Data.Snapshot.MonthlySales, crm.MonthCount)
	assert.Contains(t, buf.String(), `"leadConversionRate"`)
}

func TestSnapshotCommand_SeedIsReproducible(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, snapshotCommand(&a, seededConfig(7), true))
	require.NoError(t, snapshotCommand(&b, seededConfig(7), true))
	assert.Equal(t, a.String(), b.String())
}

func TestSnapshotCommand_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, snapshotCommand(&buf, seededConfig(42), false))

	out := buf.String()
	for _, f := range crm.Fields {
		assert.Contains(t, out, string(f))
	}
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "seed 42")
}

func TestSnapshotCommand_GenerationFailure(t *testing.T) {
	cfg := seededConfig(1)
	cfg.Sampler.FailureRate = 1

	var buf bytes.Buffer
	err := snapshotCommand(&buf, cfg, true)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrGenerate))
	assert.Empty(t, buf.String())
	assert.Equal(t, ErrCodeGenerationFailed, ErrorToJSON(err).Code)
}

func TestFormatField(t *testing.T) {
	s := crm.Placeholder()
	s.TotalCustomers = 1234
	s.CustomerSatisfaction = 4.26

	assert.Equal(t, "1,234", formatField(s, crm.FieldTotalCustomers))
	assert.Equal(t, "50", formatField(s, crm.FieldActiveDeals))
	assert.Equal(t, "4.3", formatField(s, crm.FieldCustomerSatisfaction))

	sales := formatField(s, crm.FieldMonthlySales)
	assert.Equal(t, crm.MonthCount, len(strings.Fields(sales)))
	assert.True(t, strings.HasPrefix(sales, "10,000"))
}

func TestSnapshotRows_FieldOrder(t *testing.T) {
	rows := snapshotRows(crm.Placeholder())
	require.Len(t, rows, len(crm.Fields))
	for i, f := range crm.Fields {
		assert.Equal(t, string(f), rows[i][0])
	}
}
