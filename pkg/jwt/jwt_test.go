package jwt_test

import (
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PetShop-api/pkg/jwt"
)

func TestGenerateParse(t *testing.T) {
	tok, err := jwt.Generate("secreto", "sid-1", 7, "petshop-api", 60)
	require.NoError(t, err)

	claims, err := jwt.Parse("secreto", tok)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", claims.SessionID)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "petshop-api", claims.Issuer)
}

func TestParse_Rechaza(t *testing.T) {
	tok, err := jwt.Generate("secreto", "sid-1", 7, "petshop-api", 60)
	require.NoError(t, err)

	_, err = jwt.Parse("otro", tok)
	assert.ErrorIs(t, err, gojwt.ErrTokenSignatureInvalid)

	expired, err := jwt.Generate("secreto", "sid-1", 7, "petshop-api", -1)
	require.NoError(t, err)
	_, err = jwt.Parse("secreto", expired)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)

	_, err = jwt.Generate("secreto", "", 7, "petshop-api", 60)
	assert.ErrorIs(t, err, jwt.ErrMissingSession)
}
