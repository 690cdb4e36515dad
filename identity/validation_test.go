package identity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucasmrqs/go-tarefas-server/identity"
	apperrors "github.com/lucasmrqs/go-tarefas-server/internal/errors"
)

func TestValidator_ValidateRegistration(t *testing.T) {
	v := identity.NewValidator()

	t.Run("valid input", func(t *testing.T) {
		err := v.ValidateRegistration("a@b.com", "123456", "123456")
		require.NoError(t, err)
	})

	t.Run("mismatched confirmation", func(t *testing.T) {
		err := v.ValidateRegistration("a@b.com", "123456", "654321")
		require.Error(t, err)
		require.True(t, apperrors.Is(err, apperrors.ErrValidation))
		require.Contains(t, err.Error(), "passwords do not match")
	})

	t.Run("empty email", func(t *testing.T) {
		err := v.ValidateRegistration("", "123456", "123456")
		require.True(t, apperrors.Is(err, apperrors.ErrValidation))
	})

	t.Run("empty password", func(t *testing.T) {
		err := v.ValidateRegistration("a@b.com", "", "")
		require.True(t, apperrors.Is(err, apperrors.ErrValidation))
	})

	t.Run("whitespace email", func(t *testing.T) {
		err := v.ValidateRegistration("   ", "123456", "123456")
		require.True(t, apperrors.Is(err, apperrors.ErrValidation))
	})
}

func TestValidator_ValidateCredentials(t *testing.T) {
	v := identity.NewValidator()

	t.Run("valid input", func(t *testing.T) {
		require.NoError(t, v.ValidateCredentials("a@b.com", "123456"))
	})

	t.Run("empty email", func(t *testing.T) {
		err := v.ValidateCredentials("", "123456")
		require.True(t, apperrors.Is(err, apperrors.ErrValidation))
	})

	t.Run("empty password", func(t *testing.T) {
		err := v.ValidateCredentials("a@b.com", "")
		require.True(t, apperrors.Is(err, apperrors.ErrValidation))
	})
}

func TestValidator_ValidateEmail(t *testing.T) {
	v := identity.NewValidator()

	require.NoError(t, v.ValidateEmail("a@b.com"))
	require.True(t, apperrors.Is(v.ValidateEmail(""), apperrors.ErrValidation))
}
