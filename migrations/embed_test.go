package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(FS, "*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(FS, "*.down.sql")
	require.NoError(t, err)

	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}

func TestTransactionsSchema(t *testing.T) {
	data, err := FS.ReadFile("000001_create_transactions.up.sql")
	require.NoError(t, err)

	schema := string(data)
	for _, column := range []string{"id", "date", "category", "amount", "description"} {
		assert.Contains(t, schema, "\n    "+column+" ")
	}
	assert.Contains(t, schema, "date DESC, id DESC")
	// Amounts keep whatever scale the client sent.
	assert.Contains(t, schema, "amount      NUMERIC        NOT NULL")
}
