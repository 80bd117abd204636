package shared

import "fmt"

var (
	// Field validation errors
	ErrInvalidPhone    = fmt.Errorf("phone number must contain exactly 10 digits")
	ErrInvalidBirthday = fmt.Errorf("invalid birthday format")

	// Record errors
	ErrDuplicatePhone = fmt.Errorf("phone number already exists")
	ErrPhoneNotFound  = fmt.Errorf("phone number not found")
	ErrBirthdaySet    = fmt.Errorf("birthday already set")
	ErrNoBirthday     = fmt.Errorf("no birthday set")

	// Collection errors
	ErrContactNotFound   = fmt.Errorf("contact not found")
	ErrPhoneNotInContact = fmt.Errorf("no such phone number in contact")

	// Input errors
	ErrTooFewArguments = fmt.Errorf("not enough arguments")
)
