package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-content-mirror/internal/logger"
)

func Test_newDB_PlaceholderFormatByDialect(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		want    string
	}{
		{name: "postgres uses dollar placeholders", dialect: DialectPostgres, want: "WHERE id = $1"},
		{name: "sqlite uses question placeholders", dialect: DialectSQLite, want: "WHERE id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, _, err := sqlmock.New()
			require.NoError(t, err)
			defer conn.Close()

			db := newDB(conn, tt.dialect, NewPostgresErrorClassifier(), logger.Nop())
			assert.Equal(t, tt.dialect, db.Dialect())

			query, args, err := db.builder.Select("id").From("resources").Where("id = ?", "e1").ToSql()
			require.NoError(t, err)
			assert.Contains(t, query, tt.want)
			assert.Equal(t, []any{"e1"}, args)
		})
	}
}
