package utils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"eduplus/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "testsecret", JWTTTL: time.Hour}
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := testConfig()
	token, err := GenerateJWTToken("user-1", cfg)
	require.NoError(t, err)

	id, err := ParseUserID(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)

	_, err = ParseUserID(token, &config.Config{JWTSecret: "other", JWTTTL: time.Hour})
	assert.Error(t, err)
}

func TestParseUserIDRejectsExpiredAndForeignTokens(t *testing.T) {
	cfg := testConfig()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-1",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})
	raw, err := expired.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	_, err = ParseUserID(raw, cfg)
	assert.Error(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1"})
	raw, err = noSubject.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	_, err = ParseUserID(raw, cfg)
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "secreto123"))
	assert.False(t, CheckPassword(hash, "otra"))
	assert.False(t, CheckPassword("", "secreto123"))
}

type sample struct {
	Email  string `json:"email" validate:"required,email"`
	Nombre string `json:"nombre" validate:"notblank"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(sample{Email: "a@b.co", Nombre: "Ana"}))

	fields := ValidateStruct(sample{Email: "nope", Nombre: "   "})
	require.Len(t, fields, 2)
	assert.Contains(t, fields, "email")
	assert.Equal(t, "nombre cannot be blank", fields["nombre"])
}

func TestIsAbsoluteURL(t *testing.T) {
	assert.True(t, IsAbsoluteURL("https://img.example.com/a.png"))
	assert.False(t, IsAbsoluteURL("/relative.png"))
	assert.False(t, IsAbsoluteURL("not a url"))
}

func decode(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestResponses(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(NopLogger())})
	app.Get("/ok", func(c *fiber.Ctx) error { return OK(c, fiber.Map{"x": 1}) })
	app.Get("/page", func(c *fiber.Ctx) error {
		return Paginate(c, []int{1, 2}, 7, 2, 2, fiber.Map{"k": "v"})
	})
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return ValidationError(c, "bad", map[string]string{"email": "required"})
	})
	app.Get("/fiber", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusUnauthorized, "nope") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("db down") })

	status, body := decode(t, app, "/ok")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	assert.EqualValues(t, 1, body["x"])

	_, body = decode(t, app, "/page")
	assert.EqualValues(t, 4, body["pages"])
	assert.EqualValues(t, 7, body["total"])
	assert.Equal(t, "v", body["meta"].(map[string]interface{})["k"])

	status, body = decode(t, app, "/invalid")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "required", body["details"].(map[string]interface{})["email"])

	status, body = decode(t, app, "/fiber")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "nope", body["error"])

	status, body = decode(t, app, "/boom")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.NotContains(t, body["error"], "db down")
}
