// Package store defines the persistence contracts of the contacts API:
// the UserStore, ContactStore and AddressStore interfaces, the DBTX
// abstraction shared by connections and transactions, and the sentinel
// errors every implementation returns.
//
// Ownership is part of the contract. Contact lookups and mutations always
// take the owning user's ID and address lookups always take the parent
// contact's ID, so a row that exists but belongs to someone else is
// reported exactly like a missing row.
package store
