// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx stdlib driver, and embeds the goose migrations
// that create the schema those stores expect.
//
// Stores accept a store.DBTX, so the same implementation serves a pooled
// *sql.DB and a *sql.Tx obtained from store.RunInTransaction. Ownership
// predicates (user_id for contacts, contact_id for addresses) are part of
// every query's WHERE clause rather than checked after the fact.
package postgres
