package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestHashPassword_FromArgument(t *testing.T) {
	out, err := runRoot(t, "", "hash-password", "s3cret-pass")
	require.NoError(t, err)
	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret-pass")))
}

func TestHashPassword_FromStdin(t *testing.T) {
	out, err := runRoot(t, "piped-pass\n", "hash-password")
	require.NoError(t, err)
	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("piped-pass")))
}

func TestHashPassword_RejectsEmpty(t *testing.T) {
	_, err := runRoot(t, "\n", "hash-password")
	assert.Error(t, err)

	_, err = runRoot(t, "", "hash-password")
	assert.Error(t, err)
}

func TestRootCommand_ListsSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range newRootCommand().Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "hash-password"} {
		assert.True(t, names[want], want)
	}
}
