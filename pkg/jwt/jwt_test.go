package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/refnet-api/pkg/jwt"
)

const secret = "test-secret"

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "u1", "u1@refnet.test", "driver", "refnet-test", 5)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "u1@refnet.test", claims.Email)
	assert.Equal(t, "driver", claims.Role)
	assert.Equal(t, "refnet-test", claims.Issuer)
}

func TestParse_Errores(t *testing.T) {
	expired, err := pkgjwt.Generate(secret, "u1", "", "driver", "refnet-test", -1)
	require.NoError(t, err)
	_, err = pkgjwt.Parse(secret, expired)
	assert.Error(t, err, "token expirado")

	ok, err := pkgjwt.Generate(secret, "u1", "", "driver", "refnet-test", 5)
	require.NoError(t, err)
	_, err = pkgjwt.Parse("otro", ok)
	assert.Error(t, err, "secret incorrecto")

	_, err = pkgjwt.Parse("", ok)
	assert.Error(t, err)

	_, err = pkgjwt.Generate("", "u1", "", "driver", "x", 5)
	assert.Error(t, err)
}
