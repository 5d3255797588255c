package main

import (
	"bytes"
	"math/rand"
	"testing"

	"bestsellers/internal/dataset"
	"bestsellers/internal/ingest"
	"bestsellers/internal/stats"
	"bestsellers/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LoadsBack(t *testing.T) {
	books := generate(rand.New(rand.NewSource(7)), 120)

	var buf bytes.Buffer
	require.NoError(t, ingest.Write(&buf, books))

	loaded, report, err := ingest.NewLoader(testutil.DiscardLogger()).Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, report.RowsSkipped)
	assert.Equal(t, books, loaded)

	ds, err := dataset.Load(loaded)
	require.NoError(t, err)
	assert.Equal(t, 120, stats.Compute(ds).TotalBooks)
}

func TestGenerate_Deterministic(t *testing.T) {
	a := generate(rand.New(rand.NewSource(3)), 10)
	b := generate(rand.New(rand.NewSource(3)), 10)
	assert.Equal(t, a, b)
}
