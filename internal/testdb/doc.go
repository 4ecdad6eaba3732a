//go:build integration

// Package testdb provides helpers for tests that run against a real
// PostgreSQL database. The database is located through DATABASE_URL; every
// test runs inside a transaction that is rolled back when it finishes.
package testdb
