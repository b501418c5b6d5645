package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-adoption/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRun_RegisterLoginApplications(t *testing.T) {
	h, err := router.NewRouter(router.Options{
		JWTSecret:         "cli-test-secret",
		BcryptCost:        bcrypt.MinCost,
		AllowRegistration: true,
	})
	require.NoError(t, err)
	ts := httptest.NewServer(h)
	defer ts.Close()

	var out, errOut bytes.Buffer

	code := run([]string{"-url", ts.URL, "register", "-u", "admin", "-p", "s3cret"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.NotEmpty(t, strings.TrimSpace(out.String()))

	out.Reset()
	code = run([]string{"-url", ts.URL, "login", "-u", "admin", "-p", "s3cret"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Equal(t, 2, strings.Count(strings.TrimSpace(out.String()), "."), "expected a JWT")

	out.Reset()
	code = run([]string{"-url", ts.URL, "applications", "-u", "admin", "-p", "s3cret"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Empty(t, out.String())

	errOut.Reset()
	code = run([]string{"-url", ts.URL, "login", "-u", "admin", "-p", "wrong"}, &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "Invalid credentials")
}

func TestRun_Usage(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 2, run(nil, &out, &errOut))
	assert.Equal(t, 2, run([]string{"login"}, &out, &errOut))
	assert.Equal(t, 2, run([]string{"nope", "-u", "a", "-p", "b"}, &out, &errOut))
}
