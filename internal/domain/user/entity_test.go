//go:build unit

package user_test

import (
	"testing"

	"fieldbook/internal/domain/user"
	"fieldbook/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic registration", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		expected := &user.User{
			ID:          "u1",
			FirstName:   "Ahmed",
			LastName:    "Karimov",
			Age:         25,
			PhoneNumber: "+998912345678",
			Role:        user.RoleUser,
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}
		assert.False(t, actual.IsOwner())
		assert.Equal(t, "Ahmed Karimov", actual.FullName())
	})

	t.Run("phone", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "nine characters ok", mutate: func(b *builder.UserBuilder) { b.WithPhone("901234567") }},
			{name: "too short", mutate: func(b *builder.UserBuilder) { b.WithPhone("90123456") }, errIs: user.ErrInvalidPhone},
			{name: "blank", mutate: func(b *builder.UserBuilder) { b.WithPhone("   ") }, errIs: user.ErrInvalidPhone},
		})
	})

	t.Run("profile", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "missing first name", mutate: func(b *builder.UserBuilder) { b.FirstName = "" }, errIs: user.ErrMissingName},
			{name: "missing last name", mutate: func(b *builder.UserBuilder) { b.LastName = " " }, errIs: user.ErrMissingName},
			{name: "zero age", mutate: func(b *builder.UserBuilder) { b.Age = 0 }, errIs: user.ErrInvalidAge},
			{name: "optional email ok", mutate: func(b *builder.UserBuilder) { b.Email = "ahmed@example.uz" }},
			{name: "bad email", mutate: func(b *builder.UserBuilder) { b.Email = "ahmed" }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "owner ok", mutate: func(b *builder.UserBuilder) { b.AsOwner() }},
			{name: "empty means user", mutate: func(b *builder.UserBuilder) { b.Role = "" }},
			{name: "admin rejected", mutate: func(b *builder.UserBuilder) { b.Role = "admin" }, errIs: user.ErrInvalidRole},
		})
	})

	t.Run("sms code", func(t *testing.T) {
		assert.NoError(t, user.ValidateSMSCode("000000"))
		assert.ErrorIs(t, user.ValidateSMSCode("12345"), user.ErrInvalidSMSCode)
		assert.ErrorIs(t, user.ValidateSMSCode("12345x"), user.ErrInvalidSMSCode)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
