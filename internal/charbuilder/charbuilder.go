// Package charbuilder drives account login and new-account/new-character
// creation as a chained dialog over the driver's Step/Continuation
// facility, backed by the accounts store for validation and persistence.
package charbuilder

import (
	"fmt"
	"strings"

	"emberloom/internal/accounts"
	"emberloom/internal/driver"
	"emberloom/internal/lang"
	"emberloom/internal/player"
)

// Builder drives the sequence of prompts that log an existing player in,
// or create a new login and the character attached to it.
type Builder struct {
	Store     *accounts.Store
	StartRace string

	// OnComplete, if set, is called once a session is admitted - either an
	// existing account that passed ValidatePassword, or a freshly Created
	// one - so the caller can finish wiring the player (name, gender,
	// starting location) from the resulting Account.
	OnComplete func(p *player.Player, acc *accounts.Account)
}

type session struct {
	name        string
	existing    bool
	password    string
	email       string
	gender      lang.Gender
	race        string
}

// Begin suspends p in the first step of login/account creation: choosing
// a name. An unrecognised name falls through into character creation; a
// recognised one prompts for its password instead.
func (b *Builder) Begin(ctx DriverContext, p *player.Player) {
	s := &session{}
	ctx.BeginDialog(p, driver.Step{
		Mode:   driver.DialogInput,
		Prompt: "By what name shall we know you? (3-16 lowercase letters)",
	}, b.continuation(s, p))
}

// DriverContext is the subset of *driver.Context the builder needs; kept
// narrow so tests can supply a fake.
type DriverContext interface {
	BeginDialog(p *player.Player, step driver.Step, cont driver.Continuation)
}

// continuation drives every step of login/account creation through a
// single Continuation closure, dispatching on which fields of s are
// already filled in, since ResumeDialog reuses the same closure across
// steps rather than taking a fresh one from each returned Step.
func (b *Builder) continuation(s *session, p *player.Player) driver.Continuation {
	return func(response string) (*driver.Step, bool, error) {
		switch {
		case s.name == "" && !s.existing:
			name := strings.ToLower(strings.TrimSpace(response))
			if err := accounts.AcceptName(name); err != nil {
				return &driver.Step{Mode: driver.DialogInput, Prompt: err.Error() + "\nChoose another name:"}, false, nil
			}
			s.name = name
			if _, err := b.Store.Get(name); err == nil {
				s.existing = true
				return &driver.Step{Mode: driver.DialogInputNoEcho, Prompt: "Password:"}, false, nil
			}
			return &driver.Step{Mode: driver.DialogInputNoEcho, Prompt: "Choose a password (min 6 chars, letters and digits):"}, false, nil

		case s.existing:
			if err := b.Store.ValidatePassword(s.name, response); err != nil {
				s.name = ""
				s.existing = false
				return &driver.Step{Mode: driver.DialogInput, Prompt: err.Error() + "\nBy what name shall we know you?"}, false, nil
			}
			acc, err := b.Store.Get(s.name)
			if err != nil {
				return nil, true, err
			}
			if err := b.Store.LoggedIn(s.name); err != nil {
				return nil, true, err
			}
			if b.OnComplete != nil {
				b.OnComplete(p, acc)
			}
			return nil, true, nil

		case s.password == "":
			if err := accounts.AcceptPassword(response); err != nil {
				return &driver.Step{Mode: driver.DialogInputNoEcho, Prompt: err.Error() + "\nChoose a password:"}, false, nil
			}
			s.password = response
			return &driver.Step{Mode: driver.DialogInputNoEcho, Prompt: "Confirm your password:"}, false, nil

		case s.email == "":
			if response != s.password {
				s.password = ""
				return &driver.Step{Mode: driver.DialogInputNoEcho, Prompt: "Passwords did not match. Choose a password:"}, false, nil
			}
			s.email = "-"
			return &driver.Step{Mode: driver.DialogInput, Prompt: "Your email address (used only for account recovery):"}, false, nil

		case s.email == "-":
			if err := accounts.AcceptEmail(response); err != nil {
				return &driver.Step{Mode: driver.DialogInput, Prompt: err.Error() + "\nYour email address:"}, false, nil
			}
			s.email = response
			return &driver.Step{Mode: driver.DialogInput, Prompt: "Your gender (m/f/n):"}, false, nil

		case s.gender == "":
			gender, ok := lang.ValidateGender(response)
			if !ok {
				return &driver.Step{Mode: driver.DialogInput, Prompt: "Please answer m, f, or n:"}, false, nil
			}
			s.gender = gender
			return &driver.Step{Mode: driver.DialogInput, Prompt: fmt.Sprintf("Your race (default %s):", b.StartRace)}, false, nil

		default:
			race := strings.TrimSpace(response)
			if race == "" {
				race = b.StartRace
			}
			s.race = race
			acc, err := b.Store.Create(s.name, s.password, s.email, accounts.CharStat{
				Gender: string(s.gender),
				Race:   s.race,
				Level:  1,
				HP:     1,
			}, nil)
			if err != nil {
				return nil, true, err
			}
			if b.OnComplete != nil {
				b.OnComplete(p, acc)
			}
			return nil, true, nil
		}
	}
}
