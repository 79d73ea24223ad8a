package jwt_test

import (
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendas-dashboard/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func TestGenerateParse(t *testing.T) {
	tok, err := jwt.Generate(secret, "u1", "ana@x.com", "test", 60)
	require.NoError(t, err)

	claims, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID())
	assert.Equal(t, "ana@x.com", claims.Email)
	assert.Equal(t, "authenticated", claims.Role)
	assert.False(t, claims.Expiry().IsZero())
}

func TestParse_Rechazos(t *testing.T) {
	_, err := jwt.Parse("", "x")
	assert.Error(t, err, "secret vacío")

	tok, err := jwt.Generate(secret, "u1", "a@x.com", "test", 60)
	require.NoError(t, err)
	_, err = jwt.Parse("otro", tok)
	assert.Error(t, err, "firma incorrecta")

	noSub, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{"email": "a@x.com"}).SignedString([]byte(secret))
	require.NoError(t, err)
	_, err = jwt.Parse(secret, noSub)
	assert.Error(t, err, "sin sub")
}
