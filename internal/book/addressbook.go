package book

import (
	"fmt"
	"time"

	"abk/internal/shared"
)

// Greeting pairs a contact name with the date a congratulation is due.
type Greeting struct {
	Name               string
	CongratulationDate time.Time
}

// AddressBook maps contact names to records. The raw map is never exposed,
// so every key always equals the name of the record it points at. A key
// slice tracks insertion order because ranging over the map would reshuffle
// command output between runs of the same process.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook creates an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord inserts record under its name, silently replacing any existing
// entry. The add handler relies on this upsert to avoid creating a second
// record for a name it already knows.
func (b *AddressBook) AddRecord(record *Record) {
	name := record.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = record
}

// Find returns the record stored under name. Exact string match, no
// normalization.
func (b *AddressBook) Find(name string) (*Record, bool) {
	record, ok := b.records[name]
	return record, ok
}

// Delete removes the record stored under name.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("%w: %s", shared.ErrContactNotFound, name)
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Records returns the contained records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// Len reports how many contacts the book holds.
func (b *AddressBook) Len() int { return len(b.records) }

// upcomingWindowDays is the inclusive range ahead of the reference date in
// which a birthday counts as upcoming.
const upcomingWindowDays = 7

// UpcomingBirthdays reports which contacts should be congratulated within
// the week starting at reference. Every stored birthday is projected onto
// the reference year and the year after, so the window spans a year
// boundary; a projection landing on Saturday or Sunday rolls forward to
// the next Monday. The two year candidates are evaluated independently and
// no dedup is applied. Records without a birthday are skipped.
//
// Projections of Feb 29 onto a non-leap year normalize to Mar 1, following
// time.Date.
func (b *AddressBook) UpcomingBirthdays(reference time.Time) []Greeting {
	today := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, time.UTC)

	var greetings []Greeting
	for _, record := range b.Records() {
		bd, ok := record.Birthday()
		if !ok {
			continue
		}
		date := bd.Date()
		for _, year := range []int{today.Year(), today.Year() + 1} {
			candidate := time.Date(year, date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
			daysDiff := int(candidate.Sub(today) / (24 * time.Hour))
			if daysDiff < 0 || daysDiff > upcomingWindowDays {
				continue
			}
			greetings = append(greetings, Greeting{
				Name:               record.Name(),
				CongratulationDate: rollOffWeekend(candidate),
			})
		}
	}
	return greetings
}

// rollOffWeekend moves Saturday and Sunday dates to the following Monday
// and leaves weekdays untouched.
func rollOffWeekend(date time.Time) time.Time {
	// Monday-based index: Monday=0 .. Sunday=6.
	weekday := (int(date.Weekday()) + 6) % 7
	if weekday < 5 {
		return date
	}
	return date.AddDate(0, 0, 7-weekday)
}
