package user

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
)

var (
	ErrNotFound    = errors.New("member not found")
	ErrEmailExists = errors.New("a member with this email already exists")
)

type (
	Repository interface {
		GetByID(id string) (User, error)
		GetByEmail(email string) (User, error)
		Create(usr User) (User, error)
		Update(usr User) (User, error)
	}

	// SessionRepository remembers revoked session tokens until they expire.
	SessionRepository interface {
		Revoke(tokenID string, expiresAt time.Time) error
		IsRevoked(tokenID string) (bool, error)
	}

	Options struct {
		LoginDelay   time.Duration
		ProfileDelay time.Duration
	}

	Service struct {
		repo     Repository
		sessions SessionRepository
		opts     Options
	}
)

func NewService(repo Repository, sessions SessionRepository, opts Options) *Service {
	return &Service{repo: repo, sessions: sessions, opts: opts}
}

func NewServiceFromConfig(repo Repository, sessions SessionRepository, conf *core.Config) *Service {
	return NewService(repo, sessions, Options{
		LoginDelay:   conf.Simulate.LoginDelay,
		ProfileDelay: conf.Simulate.ProfileDelay,
	})
}

func (svc *Service) GetByID(id string) (User, error) {
	return svc.repo.GetByID(id)
}

func (svc *Service) GetByEmail(email string) (User, error) {
	return svc.repo.GetByEmail(core.CleanString(email, true /* lower */))
}

// Login accepts any typed credentials after the login delay. The session acts as the member
// registered under the email, who is created on first login.
// cr must have been validated.
func (svc *Service) Login(ctx context.Context, cr Credentials) (User, core.Outcome, error) {
	var usr User
	sim := core.Simulation{
		Delay:   svc.opts.LoginDelay,
		Success: core.Notice{Title: "Login Successful!", Description: "Welcome back to FriendCircle Fund"},
		Failure: core.Notice{Title: "Login Failed", Description: "Invalid email or password. Please try again."},
	}
	out, err := sim.Run(ctx, func() error {
		var err error
		usr, err = svc.repo.GetByEmail(cr.Email)
		if err == nil {
			return nil
		}
		if errors.Cause(err) != ErrNotFound {
			return errors.Wrap(err, "finding member by email")
		}
		usr, err = svc.repo.Create(User{
			ID:    uuid.New().String(),
			Name:  NameFromEmail(cr.Email),
			Email: cr.Email,
		})
		return errors.Wrap(err, "registering member")
	})
	if err != nil {
		return User{}, out, err
	}
	return usr, out, nil
}

// Logout revokes the session token immediately.
func (svc *Service) Logout(tokenID string, expiresAt time.Time) (*core.Notice, error) {
	if err := svc.sessions.Revoke(tokenID, expiresAt); err != nil {
		return nil, errors.Wrap(err, "revoking session")
	}
	return core.NewNotice("Logged Out", "You have been successfully logged out."), nil
}

func (svc *Service) IsRevoked(tokenID string) (bool, error) {
	return svc.sessions.IsRevoked(tokenID)
}

// UpdateProfile saves the profile changes of member id after the profile delay.
func (svc *Service) UpdateProfile(ctx context.Context, id string, up UpdateProfile) (User, core.Outcome, error) {
	up.clean()
	if up.Email != "" {
		other, err := svc.repo.GetByEmail(up.Email)
		if err == nil && other.ID != id {
			return User{}, core.Outcome{}, core.NewValidationError(ErrEmailExists, core.FieldError{Field: "email", Error: ErrEmailExists.Error()})
		} else if err != nil && errors.Cause(err) != ErrNotFound {
			return User{}, core.Outcome{}, errors.Wrap(err, "checking email uniqueness")
		}
	}
	if len(up.AvatarFile) > 0 {
		up.Avatar = DataURI(up.AvatarFile)
	}

	var usr User
	sim := core.Simulation{
		Delay:   svc.opts.ProfileDelay,
		Success: core.Notice{Title: "Profile Updated", Description: "Your profile has been successfully updated."},
		Failure: core.Notice{Title: "Error", Description: "Failed to update profile. Please try again."},
	}
	out, err := sim.Run(ctx, func() error {
		var err error
		usr, err = svc.repo.GetByID(id)
		if err != nil {
			return errors.Wrap(err, "finding member")
		}
		if up.Name != "" {
			usr.Name = up.Name
		}
		if up.Email != "" {
			usr.Email = up.Email
		}
		if up.Avatar != "" {
			usr.Avatar = up.Avatar
		}
		usr, err = svc.repo.Update(usr)
		return errors.Wrap(err, "updating member")
	})
	if err != nil {
		return User{}, out, err
	}
	return usr, out, nil
}

// NameFromEmail derives a display name from the local part of an email: jane.doe@x -> Jane Doe.
func NameFromEmail(email string) string {
	local := email
	if i := strings.Index(email, "@"); i >= 0 {
		local = email[:i]
	}
	words := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	if len(words) == 0 {
		return "Member"
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// DataURI embeds b as a base64 data URI with its detected content type.
func DataURI(b []byte) string {
	mtype := mimetype.Detect(b).String()
	if i := strings.Index(mtype, ";"); i >= 0 {
		mtype = mtype[:i]
	}
	return "data:" + mtype + ";base64," + base64.StdEncoding.EncodeToString(b)
}
