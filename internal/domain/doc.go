// Package domain defines the core entities of the contacts API: users,
// the contacts they own and the addresses attached to those contacts.
// Entities validate themselves and know how to apply partial updates, but
// carry no persistence or transport concerns.
package domain
