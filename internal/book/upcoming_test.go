package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactWithBirthday(t *testing.T, b *AddressBook, name, birthday string) {
	t.Helper()
	r := NewRecord(name)
	require.NoError(t, r.AddPhone("1234567890"))
	require.NoError(t, r.AddBirthday(birthday))
	b.AddRecord(r)
}

// TestUpcomingBirthdays verifies the scheduling window: the inclusive 0-7
// day range, the weekend-to-Monday rollover, and the projection onto both
// the reference year and the year after.
func TestUpcomingBirthdays(t *testing.T) {
	// Reference: Monday, June 10th 2024.
	reference := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		birthday string
		want     string // expected congratulation date, empty when out of window
		desc     string
	}{
		{
			name:     "weekday inside window",
			birthday: "12.06.1990",
			want:     "12.06.2024",
			desc:     "June 12th 2024 is a Wednesday and stays put",
		},
		{
			name:     "saturday rolls to monday",
			birthday: "15.06.1990",
			want:     "17.06.2024",
			desc:     "June 15th 2024 is a Saturday, greeting moves to Monday the 17th",
		},
		{
			name:     "sunday rolls to monday",
			birthday: "16.06.1985",
			want:     "17.06.2024",
			desc:     "June 16th 2024 is a Sunday, greeting moves to Monday the 17th",
		},
		{
			name:     "birthday today",
			birthday: "10.06.1970",
			want:     "10.06.2024",
			desc:     "zero days difference is inside the window",
		},
		{
			name:     "exactly seven days ahead",
			birthday: "17.06.2000",
			want:     "17.06.2024",
			desc:     "the window is inclusive at seven days",
		},
		{
			name:     "eight days ahead",
			birthday: "18.06.2000",
			want:     "",
			desc:     "one day past the window is excluded",
		},
		{
			name:     "yesterday",
			birthday: "09.06.2000",
			want:     "",
			desc:     "a passed birthday waits for next year",
		},
		{
			name:     "far away",
			birthday: "01.12.1990",
			want:     "",
			desc:     "a birthday months out never matches either projection",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewAddressBook()
			contactWithBirthday(t, b, "Alice", tt.birthday)

			greetings := b.UpcomingBirthdays(reference)
			if tt.want == "" {
				assert.Empty(t, greetings, tt.desc)
				return
			}
			require.Len(t, greetings, 1, tt.desc)
			assert.Equal(t, "Alice", greetings[0].Name)
			assert.Equal(t, tt.want, greetings[0].CongratulationDate.Format(BirthdayLayout), tt.desc)
		})
	}
}

func TestUpcomingBirthdaysYearBoundary(t *testing.T) {
	// Reference: Monday, December 30th 2024. Early-January birthdays only
	// match through the next-year projection.
	reference := time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)

	b := NewAddressBook()
	contactWithBirthday(t, b, "Alice", "02.01.1988")
	contactWithBirthday(t, b, "Bob", "31.12.1992")
	contactWithBirthday(t, b, "Carol", "15.07.1990")

	greetings := b.UpcomingBirthdays(reference)
	require.Len(t, greetings, 2)

	assert.Equal(t, "Alice", greetings[0].Name)
	assert.Equal(t, "02.01.2025", greetings[0].CongratulationDate.Format(BirthdayLayout),
		"January 2nd 2025 is a Thursday and stays put")

	assert.Equal(t, "Bob", greetings[1].Name)
	assert.Equal(t, "31.12.2024", greetings[1].CongratulationDate.Format(BirthdayLayout),
		"December 31st 2024 is a Tuesday and stays put")
}

func TestUpcomingBirthdaysSkipsRecordsWithoutBirthday(t *testing.T) {
	reference := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	b := NewAddressBook()
	bare := NewRecord("NoBirthday")
	require.NoError(t, bare.AddPhone("5555555555"))
	b.AddRecord(bare)
	contactWithBirthday(t, b, "Alice", "12.06.1990")

	greetings := b.UpcomingBirthdays(reference)
	require.Len(t, greetings, 1)
	assert.Equal(t, "Alice", greetings[0].Name)
}

func TestUpcomingBirthdaysEmptyBook(t *testing.T) {
	b := NewAddressBook()
	assert.Empty(t, b.UpcomingBirthdays(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)))
}

// TestUpcomingBirthdaysBothProjectionsEvaluated documents the known
// boundary behavior: both year candidates are checked independently and no
// dedup is applied. On a real calendar the two projections sit a full year
// apart, so at most one can land inside the seven day window; the
// assertion pins the single-emission outcome rather than "fixing" the
// dual-candidate possibility.
func TestUpcomingBirthdaysBothProjectionsEvaluated(t *testing.T) {
	reference := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	b := NewAddressBook()
	contactWithBirthday(t, b, "Alice", "10.06.1990")

	greetings := b.UpcomingBirthdays(reference)
	require.Len(t, greetings, 1, "current-year projection matches, next-year is 365 days out")
}

// TestUpcomingBirthdaysLeapDay pins the Feb 29 decision: projecting onto a
// non-leap year normalizes to March 1st, following time.Date.
func TestUpcomingBirthdaysLeapDay(t *testing.T) {
	// Reference: Tuesday, February 25th 2025 (non-leap year).
	reference := time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC)

	b := NewAddressBook()
	contactWithBirthday(t, b, "Alice", "29.02.1996")

	greetings := b.UpcomingBirthdays(reference)
	require.Len(t, greetings, 1)
	assert.Equal(t, "03.03.2025", greetings[0].CongratulationDate.Format(BirthdayLayout),
		"Feb 29 projects to Mar 1 2025, a Saturday, which rolls to Monday Mar 3")
}

func TestUpcomingBirthdaysOrderFollowsInsertion(t *testing.T) {
	reference := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	b := NewAddressBook()
	contactWithBirthday(t, b, "Carol", "12.06.1990")
	contactWithBirthday(t, b, "Alice", "11.06.1990")
	contactWithBirthday(t, b, "Bob", "13.06.1990")

	greetings := b.UpcomingBirthdays(reference)
	require.Len(t, greetings, 3)
	assert.Equal(t, "Carol", greetings[0].Name)
	assert.Equal(t, "Alice", greetings[1].Name)
	assert.Equal(t, "Bob", greetings[2].Name)
}
