package main

import (
	"errors"
	"fmt"
	"strings"

	"abk/internal/book"
	"abk/internal/shared"
)

// handler is one REPL command: parsed positional arguments in, display
// string out. Domain errors surface to the dispatch boundary untranslated.
type handler struct {
	minArgs int
	run     func(args []string) (string, error)
}

func (r *Runner) handlers() map[string]handler {
	return map[string]handler{
		"hello":         {0, r.hello},
		"add":           {2, r.addContact},
		"change":        {3, r.changeContact},
		"delete":        {1, r.deleteContact},
		"delete-phone":  {2, r.deletePhone},
		"phone":         {1, r.showPhone},
		"all":           {0, r.showAll},
		"add-birthday":  {2, r.addBirthday},
		"show-birthday": {1, r.showBirthday},
		"birthdays":     {0, r.birthdays},
	}
}

// errDisplays maps every domain error kind to its one-line display string.
// Ordered so the contact-level kinds win over the phone-level ones they
// could otherwise shadow.
var errDisplays = []struct {
	err  error
	text string
}{
	{shared.ErrTooFewArguments, "Not enough arguments"},
	{shared.ErrContactNotFound, "Contact not found"},
	{shared.ErrInvalidPhone, "Phone number must contain exactly 10 digits."},
	{shared.ErrInvalidBirthday, "Invalid date format. Use DD.MM.YYYY"},
	{shared.ErrDuplicatePhone, "This phone number already exists"},
	{shared.ErrPhoneNotInContact, "No such phone number in contact"},
	{shared.ErrPhoneNotFound, "Phone number not found"},
	{shared.ErrBirthdaySet, "Birthday already given"},
	{shared.ErrNoBirthday, "No birthday found"},
}

// translateErr is the single error boundary every handler shares: each
// domain error kind becomes its user-facing line, anything unknown renders
// its own message.
func translateErr(err error) string {
	for _, d := range errDisplays {
		if errors.Is(err, d.err) {
			return d.text
		}
	}
	return err.Error()
}

// dispatch routes one parsed command through its handler and applies the
// error translation boundary. Unknown commands and argument-count
// mismatches never reach a handler.
func (r *Runner) dispatch(command string, args []string) string {
	h, ok := r.commands[command]
	if !ok {
		return "Invalid command."
	}
	if len(args) < h.minArgs {
		return translateErr(shared.ErrTooFewArguments)
	}

	msg, err := h.run(args)
	if err != nil {
		r.logger.Debug("command failed", "command", command, "err", err)
		return translateErr(err)
	}
	return msg
}

func (r *Runner) hello(args []string) (string, error) {
	return "How can I help you?", nil
}

// addContact upserts: an unknown name gets a fresh record, a known name
// gets the phone appended to its existing record. The record is inserted
// before the phone is validated, so a bad phone still leaves the (empty)
// contact behind, matching the add/update message split.
func (r *Runner) addContact(args []string) (string, error) {
	name, phone := args[0], args[1]

	record, ok := r.book.Find(name)
	message := "Contact updated."
	if !ok {
		record = book.NewRecord(name)
		r.book.AddRecord(record)
		message = "Contact added."
	}
	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	return message, nil
}

func (r *Runner) changeContact(args []string) (string, error) {
	name, oldPhone, newPhone := args[0], args[1], args[2]

	record, ok := r.book.Find(name)
	if !ok {
		return "", shared.ErrContactNotFound
	}
	if err := record.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return "Contact updated", nil
}

func (r *Runner) deleteContact(args []string) (string, error) {
	name := args[0]

	if _, ok := r.book.Find(name); !ok {
		return "", shared.ErrContactNotFound
	}
	if err := r.book.Delete(name); err != nil {
		return "", err
	}
	return "Contact deleted", nil
}

func (r *Runner) deletePhone(args []string) (string, error) {
	name, phone := args[0], args[1]

	record, ok := r.book.Find(name)
	if !ok {
		return "", shared.ErrContactNotFound
	}
	if err := record.DeletePhone(phone); err != nil {
		if errors.Is(err, shared.ErrPhoneNotFound) {
			return "", fmt.Errorf("%w: %s", shared.ErrPhoneNotInContact, phone)
		}
		return "", err
	}
	return "Phone deleted", nil
}

func (r *Runner) showPhone(args []string) (string, error) {
	record, ok := r.book.Find(args[0])
	if !ok {
		return "", shared.ErrContactNotFound
	}

	phones := record.Phones()
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; "), nil
}

func (r *Runner) showAll(args []string) (string, error) {
	records := r.book.Records()
	if len(records) == 0 {
		return "No contacts found", nil
	}

	lines := make([]string, len(records))
	for i, record := range records {
		lines[i] = record.String()
	}
	return strings.Join(lines, "\n"), nil
}

func (r *Runner) addBirthday(args []string) (string, error) {
	name, birthday := args[0], args[1]

	record, ok := r.book.Find(name)
	if !ok {
		return "", shared.ErrContactNotFound
	}
	if err := record.AddBirthday(birthday); err != nil {
		return "", err
	}
	return "Birthday added", nil
}

func (r *Runner) showBirthday(args []string) (string, error) {
	record, ok := r.book.Find(args[0])
	if !ok {
		return "", shared.ErrContactNotFound
	}

	bd, ok := record.Birthday()
	if !ok {
		return "", shared.ErrNoBirthday
	}
	return bd.String(), nil
}

func (r *Runner) birthdays(args []string) (string, error) {
	greetings := r.book.UpcomingBirthdays(r.clock.Now())
	if len(greetings) == 0 {
		return "No upcoming birthdays available", nil
	}

	lines := make([]string, len(greetings))
	for i, g := range greetings {
		lines[i] = fmt.Sprintf("{'name': '%s', 'congratulation_date': '%s'}",
			g.Name, g.CongratulationDate.Format(book.BirthdayLayout))
	}
	return strings.Join(lines, "\n"), nil
}
