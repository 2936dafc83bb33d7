package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"luxride/internal/models"
	"luxride/internal/repository"
)

type SignupInput struct {
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Password        string          `json:"password"`
	ConfirmPassword string          `json:"confirm_password"`
	UserType        models.UserType `json:"user_type"`
}

type ProfileInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Photo string `json:"photo"`
}

// Accounts handles signup, login and profile edits.
type Accounts struct {
	store *repository.Store
	now   func() time.Time
}

func NewAccounts(store *repository.Store) *Accounts {
	return &Accounts{store: store, now: time.Now}
}

// Signup creates a user, plus a driver profile for drivers. It does not log
// the user in.
func (a *Accounts) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	if in.UserType == "" {
		in.UserType = models.UserTypeRider
	}

	if err := required(
		field{"name", in.Name}, field{"email", in.Email},
		field{"phone", in.Phone}, field{"password", in.Password},
	); err != nil {
		return nil, err
	}
	if in.UserType != models.UserTypeRider && in.UserType != models.UserTypeDriver {
		return nil, ErrInvalidUserType
	}
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	if _, err := a.store.UserByEmail(ctx, in.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: string(hashed),
		UserType: in.UserType,
	}
	err = a.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.CreateUser(ctx, user); err != nil {
			return err
		}
		if user.UserType != models.UserTypeDriver {
			return nil
		}
		profile := newDriverProfile(user, a.now())
		if err := tx.CreateDriverProfile(ctx, profile); err != nil {
			return err
		}
		user.DriverProfile = profile
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "user_type": user.UserType}).Info("User signed up")
	return user, nil
}

func newDriverProfile(u *models.User, at time.Time) *models.DriverProfile {
	first, last, _ := strings.Cut(u.Name, " ")
	ms := fmt.Sprintf("%d", at.UnixMilli())
	return &models.DriverProfile{
		UserID:     u.ID,
		FirstName:  first,
		LastName:   strings.TrimSpace(last),
		FullName:   u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		DriverCode: "DR-" + ms[len(ms)-4:],
	}
}

// Login matches identifier against email or phone within userType and checks
// the password.
func (a *Accounts) Login(ctx context.Context, identifier, password string, userType models.UserType) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	if userType == "" {
		userType = models.UserTypeRider
	}

	// emails are stored lowercased, phone numbers as typed
	if strings.Contains(identifier, "@") {
		identifier = strings.ToLower(identifier)
	}
	candidates, err := a.store.UsersByIdentifier(ctx, identifier, userType)
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		u := &candidates[i]
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
			continue
		}
		now := a.now()
		u.LastLogin = &now
		if err := a.store.SaveUser(ctx, u); err != nil {
			logrus.WithError(err).WithField("user_id", u.ID).Warn("Failed to record last login")
		}
		return u, nil
	}
	return nil, ErrInvalidCredentials
}

func (a *Accounts) Profile(ctx context.Context, userID string) (*models.User, error) {
	return a.store.UserByID(ctx, userID)
}

// UpdateProfile overwrites the editable fields. Empty name or email is
// rejected; phone and photo may be cleared.
func (a *Accounts) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Photo = strings.TrimSpace(in.Photo)
	if err := required(field{"name", in.Name}, field{"email", in.Email}); err != nil {
		return nil, err
	}

	user, err := a.store.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Email != user.Email {
		other, err := a.store.UserByEmail(ctx, in.Email)
		if err == nil && other.ID != user.ID {
			return nil, ErrDuplicateEmail
		}
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Phone = in.Phone
	user.Photo = in.Photo
	user.UpdatedAt = a.now()
	if err := a.store.SaveUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

func (a *Accounts) DriverProfile(ctx context.Context, userID string) (*models.DriverProfile, error) {
	return a.store.DriverProfileByUser(ctx, userID)
}
