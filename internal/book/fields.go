package book

import (
	"fmt"
	"regexp"
	"time"

	"abk/internal/shared"
)

// phonePattern matches exactly ten decimal digits, no separators.
var phonePattern = regexp.MustCompile(`^\d{10}$`)

// birthdayPattern matches the DD.MM.YYYY textual form. Whether the digits
// denote a real calendar date is left to time.Parse.
var birthdayPattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// BirthdayLayout is the fixed reference layout for birthday input and display.
const BirthdayLayout = "02.01.2006"

// Name is a contact's display name. It carries no format rules and doubles
// as the record key inside an [AddressBook].
type Name struct {
	value string
}

// NewName wraps value as a display name.
func NewName(value string) Name { return Name{value: value} }

func (n Name) String() string { return n.value }

// Phone is a value object wrapping a ten digit phone number.
// Always valid in memory — use [NewPhone] to construct. Two Phones compare
// equal iff their digits are equal, which is what lets a [Record]
// deduplicate and look them up by raw string.
type Phone struct {
	value string
}

// NewPhone validates raw against the ten digit pattern.
func NewPhone(raw string) (Phone, error) {
	if !phonePattern.MatchString(raw) {
		return Phone{}, fmt.Errorf("%w: %q", shared.ErrInvalidPhone, raw)
	}
	return Phone{value: raw}, nil
}

// MustPhone constructs a Phone, panicking on invalid input. Use only in tests.
func MustPhone(raw string) Phone {
	p, err := NewPhone(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Phone) String() string { return p.value }
func (p Phone) IsZero() bool   { return p.value == "" }

// Birthday wraps a calendar date parsed from DD.MM.YYYY input. The date is
// stored as a [time.Time], not a string, so window arithmetic is exact.
type Birthday struct {
	date time.Time
}

// NewBirthday validates raw against [BirthdayLayout]. Both a malformed
// string and an impossible calendar date (31.02.2024) are rejected.
func NewBirthday(raw string) (Birthday, error) {
	if !birthdayPattern.MatchString(raw) {
		return Birthday{}, fmt.Errorf("%w: %q", shared.ErrInvalidBirthday, raw)
	}
	date, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", shared.ErrInvalidBirthday, raw)
	}
	return Birthday{date: date}, nil
}

// Date returns the parsed calendar date.
func (b Birthday) Date() time.Time { return b.date }

// String re-renders the date in the DD.MM.YYYY input format.
func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }
