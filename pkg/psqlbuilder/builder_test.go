package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectUsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "name").
		From("courts").
		Where(squirrel.Eq{"id": int64(7)}).
		Where(squirrel.Eq{"status": "available"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM courts WHERE id = $1 AND status = $2", query)
	assert.Equal(t, []interface{}{int64(7), "available"}, args)
}

func TestUpdateAndDelete(t *testing.T) {
	query, args, err := Update("reservations").
		Set("status", "confirmed").
		Where(squirrel.Eq{"id": int64(1)}).
		ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE reservations SET status = $1 WHERE id = $2", query)
	assert.Len(t, args, 2)

	query, _, err = Delete("courts").Where(squirrel.Eq{"id": int64(3)}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM courts WHERE id = $1", query)
}
