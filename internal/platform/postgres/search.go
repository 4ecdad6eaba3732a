package postgres

import (
	"fmt"
	"strings"

	"github.com/phrazzld/contacts-api/internal/store"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns s into a LIKE pattern matching s as a literal
// substring. Backslash is the default LIKE escape character in PostgreSQL.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// contactSearchWhere builds the WHERE clause for a contact search. The
// owner predicate is always present; each optional filter adds one
// conjunct. Placeholders start at $1 and args holds their values in order.
func contactSearchWhere(f store.ContactFilter) (string, []any) {
	conds := []string{"user_id = $1"}
	args := []any{f.UserID}

	if f.Name != "" {
		args = append(args, containsPattern(f.Name))
		n := len(args)
		conds = append(conds, fmt.Sprintf("(first_name LIKE $%d OR last_name LIKE $%d)", n, n))
	}
	if f.Email != "" {
		args = append(args, containsPattern(f.Email))
		conds = append(conds, fmt.Sprintf("email LIKE $%d", len(args)))
	}
	if f.Phone != "" {
		args = append(args, containsPattern(f.Phone))
		conds = append(conds, fmt.Sprintf("phone LIKE $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}
