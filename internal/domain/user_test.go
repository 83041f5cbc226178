package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantMsg  string // пусто — пароль валиден
	}{
		{name: "валидный пароль", password: "Str0ng!pass"},
		{name: "короткий", password: "S1!a", wantMsg: "password must be at least 8 characters"},
		{name: "без заглавной", password: "str0ng!pass", wantMsg: "password must contain at least one uppercase letter"},
		{name: "без строчной", password: "STR0NG!PASS", wantMsg: "password must contain at least one lowercase letter"},
		{name: "без цифры", password: "Strong!pass", wantMsg: "password must contain at least one digit"},
		{name: "без спецсимвола", password: "Str0ngpass", wantMsg: "password must contain at least one special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "password", vErr.Field)
			assert.Equal(t, tt.wantMsg, vErr.Message)
		})
	}
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("alice"))
	assert.Error(t, ValidateUsername("ab"))                 // короче 3
	assert.Error(t, ValidateUsername("with space"))         // пробел
	assert.NoError(t, ValidateUsername("under_score.dash")) // точки и подчёркивания разрешены
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.Error(t, ValidateEmail("no-at-sign"))
	assert.Error(t, ValidateEmail("@example.com"))
	assert.Error(t, ValidateEmail("user@"))
	assert.Error(t, ValidateEmail("user@nodot"))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!pass", hash) // хэш, не открытый текст

	u := User{PasswordHash: hash}
	assert.True(t, u.CheckPassword("Str0ng!pass"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestNewCalculationEvent(t *testing.T) {
	c, err := New("division", nil, []float64{10, 4})
	require.NoError(t, err)

	ev := NewCalculationEvent(c)
	assert.Equal(t, c.ID.String(), ev.ID)
	assert.Equal(t, "division", ev.Kind)
	assert.Empty(t, ev.OwnerID)
	require.NotNil(t, ev.Result)
	assert.Equal(t, 2.5, *ev.Result)

	// Невычислимая запись — Result отсутствует, события это не валит.
	c.Inputs = []float64{10, 0}
	ev = NewCalculationEvent(c)
	assert.Nil(t, ev.Result)
	assert.Equal(t, []float64{10, 0}, ev.Inputs)
}
