package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "name").
		From("resources").
		Where(squirrel.Eq{"id": int64(7)}).
		Where(squirrel.Lt{"capacity": 10}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM resources WHERE id = $1 AND capacity < $2", query)
	assert.Equal(t, []interface{}{int64(7), 10}, args)
}

func TestInsertUpdateDelete(t *testing.T) {
	query, _, err := Insert("settings").Columns("key", "value").Values("breaks", "12:00-13:00").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO settings (key,value) VALUES ($1,$2)", query)

	query, _, err = Update("reservations").Set("status", "cancelled").Where(squirrel.Eq{"id": 1}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE reservations SET status = $1 WHERE id = $2", query)

	query, _, err = Delete("reservations").Where(squirrel.Eq{"id": 1}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM reservations WHERE id = $1", query)
}
