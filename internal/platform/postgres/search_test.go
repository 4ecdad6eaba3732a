package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestContainsPatternEscapesWildcards(t *testing.T) {
	assert.Equal(t, "%abc%", containsPattern("abc"))
	assert.Equal(t, `%50\%%`, containsPattern("50%"))
	assert.Equal(t, `%a\_b%`, containsPattern("a_b"))
	assert.Equal(t, `%c:\\d%`, containsPattern(`c:\d`))
}

func TestContactSearchWhere(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		filter    store.ContactFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "owner only",
			filter:    store.ContactFilter{UserID: userID},
			wantWhere: "user_id = $1",
			wantArgs:  []any{userID},
		},
		{
			name:      "name matches either column",
			filter:    store.ContactFilter{UserID: userID, Name: "ann"},
			wantWhere: "user_id = $1 AND (first_name LIKE $2 OR last_name LIKE $2)",
			wantArgs:  []any{userID, "%ann%"},
		},
		{
			name:      "email and phone without name",
			filter:    store.ContactFilter{UserID: userID, Email: "@example", Phone: "0812"},
			wantWhere: "user_id = $1 AND email LIKE $2 AND phone LIKE $3",
			wantArgs:  []any{userID, "%@example%", "%0812%"},
		},
		{
			name:      "all filters",
			filter:    store.ContactFilter{UserID: userID, Name: "a", Email: "b", Phone: "c"},
			wantWhere: "user_id = $1 AND (first_name LIKE $2 OR last_name LIKE $2) AND email LIKE $3 AND phone LIKE $4",
			wantArgs:  []any{userID, "%a%", "%b%", "%c%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := contactSearchWhere(tt.filter)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestMigrationsAreEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir(migrationsDir)
	assert.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{
		"00001_create_users.sql",
		"00002_create_contacts.sql",
		"00003_create_addresses.sql",
	}, names)
}
