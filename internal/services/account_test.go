package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxride/internal/models"
)

func TestSignupValidation(t *testing.T) {
	a := NewAccounts(newStore(t))
	ctx := context.Background()

	_, err := a.Signup(ctx, SignupInput{Name: "A", Email: "a@x.com", Password: "p", ConfirmPassword: "p"})
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "phone")

	_, err = a.Signup(ctx, SignupInput{Name: "A", Email: "a@x.com", Phone: "1", Password: "p", ConfirmPassword: "q"})
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	_, err = a.Signup(ctx, SignupInput{Name: "A", Email: "a@x.com", Phone: "1", Password: "p", ConfirmPassword: "p", UserType: "admin"})
	assert.ErrorIs(t, err, ErrInvalidUserType)
}

func TestSignupHashesPasswordAndRejectsDuplicates(t *testing.T) {
	a := NewAccounts(newStore(t))
	ctx := context.Background()
	in := SignupInput{Name: "Ann Lee", Email: "Ann@X.com", Phone: "555", Password: "pw", ConfirmPassword: "pw"}

	u, err := a.Signup(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", u.Email)
	assert.Equal(t, models.UserTypeRider, u.UserType)
	assert.NotEqual(t, "pw", u.Password)
	assert.Nil(t, u.DriverProfile)

	_, err = a.Signup(ctx, in)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestDriverSignupCreatesProfile(t *testing.T) {
	a := NewAccounts(newStore(t))
	a.now = func() time.Time { return time.UnixMilli(1760000001234) }
	ctx := context.Background()

	u, err := a.Signup(ctx, SignupInput{
		Name: "Sam Driver Jones", Email: "sam@x.com", Phone: "777",
		Password: "pw", ConfirmPassword: "pw", UserType: models.UserTypeDriver,
	})
	require.NoError(t, err)

	p, err := a.DriverProfile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sam", p.FirstName)
	assert.Equal(t, "Driver Jones", p.LastName)
	assert.Equal(t, "DR-1234", p.DriverCode)
}

func TestLogin(t *testing.T) {
	a := NewAccounts(newStore(t))
	a.now = fixedClock
	ctx := context.Background()
	_, err := a.Signup(ctx, SignupInput{Name: "Ann", Email: "ann@x.com", Phone: "555-1", Password: "pw", ConfirmPassword: "pw"})
	require.NoError(t, err)

	u, err := a.Login(ctx, "ANN@x.com", "pw", models.UserTypeRider)
	require.NoError(t, err)
	require.NotNil(t, u.LastLogin)
	assert.True(t, u.LastLogin.Equal(testNow))

	_, err = a.Login(ctx, "555-1", "pw", models.UserTypeRider)
	assert.NoError(t, err)

	_, err = a.Login(ctx, "ann@x.com", "wrong", models.UserTypeRider)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Login(ctx, "ann@x.com", "pw", models.UserTypeDriver)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Login(ctx, "", "pw", models.UserTypeRider)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	store := newStore(t)
	a := NewAccounts(store)
	ctx := context.Background()
	id := signupRider(t, store, "one@x.com")
	signupRider(t, store, "two@x.com")

	u, err := a.UpdateProfile(ctx, id, ProfileInput{Name: "  New Name ", Email: "one@x.com", Phone: " 999 "})
	require.NoError(t, err)
	assert.Equal(t, "New Name", u.Name)
	assert.Equal(t, "999", u.Phone)

	_, err = a.UpdateProfile(ctx, id, ProfileInput{Name: "X", Email: "two@x.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	_, err = a.UpdateProfile(ctx, id, ProfileInput{Name: "", Email: "one@x.com"})
	assert.ErrorIs(t, err, ErrMissingField)

	got, err := a.Profile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
}
