// Package service holds the application logic of the contacts API.
//
// UserService drives the session lifecycle (register, login, profile
// update, logout). OwnershipGuard resolves contacts and addresses strictly
// within the requesting user's scope, and ContactService and
// AddressService apply their operations through it. Services receive the
// authenticated identity explicitly and never keep it between calls.
package service
