package Token

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithToken(t *testing.T, token string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)
	return c
}

func TestGenerateAndExtractTokenID(t *testing.T) {
	t.Setenv("API_SECRET", "test-secret")
	t.Setenv("TOKEN_HOUR_LIFESPAN", "1")

	token, err := GenerateToken(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	c := contextWithToken(t, token)
	assert.NoError(t, TokenValid(c))

	uid, err := ExtractTokenID(c)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), uid)
}

func TestTamperedTokenRejected(t *testing.T) {
	t.Setenv("API_SECRET", "test-secret")

	token, err := GenerateToken(7)
	assert.NoError(t, err)

	c := contextWithToken(t, token+"x")
	assert.Error(t, TokenValid(c))

	_, err = ExtractTokenID(c)
	assert.Error(t, err)
}

func TestTokenFromQueryParameter(t *testing.T) {
	t.Setenv("API_SECRET", "test-secret")

	token, err := GenerateToken(9)
	assert.NoError(t, err)

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?token="+token, nil)

	uid, err := ExtractTokenID(c)
	assert.NoError(t, err)
	assert.Equal(t, uint(9), uid)
}
