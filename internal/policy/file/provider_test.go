package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asimihsan/request_gateway/pkg/gate"
)

const validRules = `
package gate

default allow := true
default deny_reasons := []

response := {
    "allow": allow,
    "deny_reasons": deny_reasons
} if true
`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestProvider_GetPolicyBundle(t *testing.T) {
	path := writeTempFile(t, "rules.rego", validRules)
	provider := New(path)

	bundle, err := provider.GetPolicyBundle(context.Background())
	require.NoError(t, err)
	require.NotNil(t, bundle)

	// SHA-256 hex digest of the file content
	assert.Len(t, bundle.ID(), 64)
	assert.Equal(t, validRules, string(bundle.Data()))

	// Second call returns the cached bundle
	again, err := provider.GetPolicyBundle(context.Background())
	require.NoError(t, err)
	assert.Same(t, bundle, again)
}

func TestProvider_GetPolicyBundle_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		provider := New(filepath.Join(t.TempDir(), "absent.rego"))
		_, err := provider.GetPolicyBundle(context.Background())
		require.Error(t, err)
		assert.True(t, gate.IsWrappingError(err, gate.ErrPolicyLoad))
	})

	t.Run("invalid rego", func(t *testing.T) {
		path := writeTempFile(t, "broken.rego", "not rego at all")
		provider := New(path)
		_, err := provider.GetPolicyBundle(context.Background())
		require.Error(t, err)
		assert.True(t, gate.IsWrappingError(err, gate.ErrPolicyLoad))
	})
}

func TestLoadDenylist(t *testing.T) {
	path := writeTempFile(t, "denylist.txt", `
# seed denylist
blockedsite.com

Example.COM
  spaced.example.org
`)

	identifiers, err := LoadDenylist(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"blockedsite.com", "Example.COM", "spaced.example.org"}, identifiers)
}

func TestLoadDenylist_MissingFile(t *testing.T) {
	_, err := LoadDenylist(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.True(t, gate.IsWrappingError(err, gate.ErrPolicyLoad))
}
