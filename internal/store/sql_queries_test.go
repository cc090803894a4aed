package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListCommentsQuery(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		want  []string
	}{
		{
			name:  "first page default limit",
			page:  1,
			limit: 6,
			want:  []string{"LIMIT 6", "OFFSET 0"},
		},
		{
			name:  "third page small limit",
			page:  3,
			limit: 2,
			want:  []string{"LIMIT 2", "OFFSET 4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListCommentsQuery(tt.page, tt.limit)
			require.NoError(t, err)
			assert.Empty(t, args)

			assert.True(t, strings.HasPrefix(query, "SELECT"))
			assert.Contains(t, query, "FROM comentarios")
			assert.Contains(t, query, "ORDER BY fecha DESC")
			assert.Contains(t, query, "fecha_formateada")
			for _, fragment := range tt.want {
				assert.Contains(t, query, fragment)
			}
		})
	}
}

func TestBuildListReferencesQuery(t *testing.T) {
	query, args, err := buildListReferencesQuery()
	require.NoError(t, err)
	assert.Empty(t, args)

	assert.True(t, strings.HasPrefix(query, "SELECT"))
	assert.Contains(t, query, "FROM referencias")
	assert.Contains(t, query, "ORDER BY fecha DESC")
	assert.Contains(t, query, "correo")
	assert.Contains(t, query, "carta")
	assert.Contains(t, query, "fecha_formateada")
	assert.NotContains(t, query, "LIMIT")
}
