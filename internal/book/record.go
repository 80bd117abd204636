package book

import (
	"fmt"
	"strings"

	"abk/internal/shared"
)

// Record is one contact: a name fixed at construction, phone numbers kept
// in insertion order without duplicates, and at most one birthday.
// A record starts with only a name; phones and the birthday are attached
// through the mutators afterwards.
type Record struct {
	uid      string
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record holding only a name.
func NewRecord(name string) *Record {
	return &Record{uid: shared.GenerateID(), name: NewName(name)}
}

// UID returns the generated identifier. It only exists for list stability
// in the contact browser; the domain key is the name.
func (r *Record) UID() string { return r.uid }

// Name returns the contact's display name.
func (r *Record) Name() string { return r.name.String() }

// Phones returns a copy of the stored phones in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone validates raw and appends it, rejecting duplicates by value.
// The phone list is unchanged when an error is returned.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	for _, p := range r.phones {
		if p == phone {
			return fmt.Errorf("%w: %s", shared.ErrDuplicatePhone, raw)
		}
	}
	r.phones = append(r.phones, phone)
	return nil
}

// FindPhone looks a phone up by its raw digits.
func (r *Record) FindPhone(raw string) (Phone, error) {
	for _, p := range r.phones {
		if p.String() == raw {
			return p, nil
		}
	}
	return Phone{}, fmt.Errorf("%w: %s", shared.ErrPhoneNotFound, raw)
}

// EditPhone replaces oldRaw with newRaw in place, keeping the list
// position rather than re-appending at the end.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	idx := -1
	for i, p := range r.phones {
		if p.String() == oldRaw {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", shared.ErrPhoneNotFound, oldRaw)
	}
	phone, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	r.phones[idx] = phone
	return nil
}

// DeletePhone removes a phone by value.
func (r *Record) DeletePhone(raw string) error {
	for i, p := range r.phones {
		if p.String() == raw {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", shared.ErrPhoneNotFound, raw)
}

// AddBirthday validates raw and attaches it. Birthdays are write-once
// through this method: a second call fails instead of overwriting.
func (r *Record) AddBirthday(raw string) error {
	if r.birthday != nil {
		return shared.ErrBirthdaySet
	}
	bd, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &bd
	return nil
}

// Birthday returns the stored birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// String renders the record the way the `all` command prints it.
// An empty phone list renders as nothing after the colon.
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(phones, "; "))
}
