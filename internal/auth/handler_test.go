package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"medsupply-backend/internal/directory"
)

type stubSource struct {
	creds map[string]directory.Credential
}

func (s stubSource) ActiveUsers(ctx context.Context) ([]directory.UserEntry, error) {
	return nil, nil
}

func (s stubSource) ActiveBranches(ctx context.Context) ([]directory.BranchEntry, error) {
	return nil, nil
}

func (s stubSource) LookupCredential(ctx context.Context, email string) (directory.Credential, error) {
	cred, ok := s.creds[email]
	if !ok {
		return directory.Credential{}, directory.ErrUserNotFound
	}
	return cred, nil
}

func loginApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	src := stubSource{creds: map[string]directory.Credential{
		"carol@clinic.test": {UserID: 3, PasswordHash: string(hash)},
	}}

	app := fiber.New()
	app.Post("/api/login", LoginHandler(src))
	return app
}

func postLogin(t *testing.T, app *fiber.App, email, password string) (int, []byte) {
	t.Helper()
	body, err := json.Marshal(LoginRequest{Email: email, Password: password})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf.Bytes()
}

func TestLoginSuccess(t *testing.T) {
	app := loginApp(t)

	status, raw := postLogin(t, app, "Carol@Clinic.Test", "s3cret")
	require.Equal(t, fiber.StatusOK, status)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, "Login successful", body["message"])
	require.Equal(t, float64(3), body["userId"])
}

func TestLoginWrongPassword(t *testing.T) {
	app := loginApp(t)

	status, _ := postLogin(t, app, "carol@clinic.test", "wrong")
	require.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLoginUnknownUser(t *testing.T) {
	app := loginApp(t)

	status, _ := postLogin(t, app, "nobody@clinic.test", "s3cret")
	require.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLoginMissingFields(t *testing.T) {
	app := loginApp(t)

	status, _ := postLogin(t, app, "", "")
	require.Equal(t, fiber.StatusBadRequest, status)
}
