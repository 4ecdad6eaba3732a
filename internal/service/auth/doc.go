// Package auth handles credentials and sessions: bcrypt password hashing,
// session token issuance (random opaque tokens or signed JWTs) and the
// Token Authenticator that maps a presented bearer token to its user.
package auth
