// Package book implements the contact directory domain for the abk assistant.
//
// The package contains three layers, leaves first:
//
// 1. Self-validating field types: [Name], [Phone], [Birthday].
// Invalid input is rejected at construction and never stored, so a value
// held in memory is always well formed.
//
// 2. [Record] : one contact's aggregate state — a fixed name, phone numbers
// in insertion order with no duplicates, and at most one birthday.
//
// 3. [AddressBook] : the collection of records keyed by contact name.
// It owns the upcoming-birthday scheduling: projecting stored birthdays onto
// the current and following year, filtering by the one week window, and
// rolling weekend dates forward to Monday.
//
// The [Clock] interface abstracts time.Now so the scheduling window can be
// pinned in tests.
package book
