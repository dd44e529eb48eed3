package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-insights/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "inventory-pro-test"
)

var testIdentity = jwt.Identity{
	UserID:    "00000000-0000-0000-0000-000000000001",
	CompanyID: "00000000-0000-0000-0000-000000000002",
	Role:      jwt.RoleAnalyst,
}

func TestGenerateYParse_IdaYVuelta(t *testing.T) {
	tok, err := jwt.Generate(testSecret, testIssuer, testIdentity, time.Hour)
	require.NoError(t, err)

	id, err := jwt.Parse(testSecret, testIssuer, tok)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, id)
}

func TestParse_Rechazos(t *testing.T) {
	tok, err := jwt.Generate(testSecret, testIssuer, testIdentity, time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secreto", testIssuer, tok)
	assert.Error(t, err, "firma incorrecta")

	_, err = jwt.Parse(testSecret, "otro-emisor", tok)
	assert.Error(t, err, "emisor incorrecto")

	expired, err := jwt.Generate(testSecret, testIssuer, testIdentity, -time.Minute)
	require.NoError(t, err)
	_, err = jwt.Parse(testSecret, testIssuer, expired)
	assert.Error(t, err, "token expirado")

	sinEmpresa, err := jwt.Generate(testSecret, testIssuer, jwt.Identity{UserID: "u"}, time.Hour)
	require.NoError(t, err)
	_, err = jwt.Parse(testSecret, testIssuer, sinEmpresa)
	assert.Error(t, err, "company_id obligatorio")
}

func TestGenerate_SecretoVacio(t *testing.T) {
	_, err := jwt.Generate("", testIssuer, testIdentity, time.Hour)
	assert.Error(t, err)
}
