package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dualsaude-api/pkg/password"
)

func TestHashVerify(t *testing.T) {
	h, err := password.Hash("segredo123")
	require.NoError(t, err)
	assert.NotEqual(t, "segredo123", h)

	assert.True(t, password.Verify("segredo123", h))
	assert.False(t, password.Verify("segredo124", h))
}

func TestVerify_HashInvalido(t *testing.T) {
	assert.False(t, password.Verify("x", ""))
	assert.False(t, password.Verify("x", "no-es-bcrypt"))
}

func TestHash_ContrasenaLarga(t *testing.T) {
	long := strings.Repeat("a", 100)
	h, err := password.Hash(long)
	require.NoError(t, err, "más de 72 bytes no debe fallar")
	assert.True(t, password.Verify(long, h))
	// solo cuentan los primeros 72 bytes
	assert.True(t, password.Verify(strings.Repeat("a", 72)+"zzz", h))
}
