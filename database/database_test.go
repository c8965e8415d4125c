package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabase_DSN(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		expected string
	}{
		{
			name:     "embedded database connection string",
			host:     "embedded",
			expected: "host=localhost port=5433 user=testuser password=testpass database=testdb sslmode=disable",
		},
		{
			name:     "external database connection string",
			host:     "test.host",
			expected: "host=test.host port=5433 user=testuser password=testpass database=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &Database{
				host:     tt.host,
				username: "testuser",
				password: "testpass",
				database: "testdb",
				port:     5433,
			}

			require.Equal(t, tt.expected, db.DSN())
		})
	}
}
