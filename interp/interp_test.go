package interp

import (
	"strings"
	"testing"

	"github.com/mython-lang/mython/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpreterRunSharesStateAcrossCalls(t *testing.T) {
	engine := New(config.Default())

	var out strings.Builder
	require.NoError(t, engine.Run("x = 40\n", &out))
	require.NoError(t, engine.Run("print x + 2\n", &out))
	assert.Equal(t, "42\n", out.String())
}

func TestInterpreterRunClassAcrossCalls(t *testing.T) {
	engine := New(config.Default())

	var out strings.Builder
	require.NoError(t, engine.Run("class Counter:\n  def __init__(self):\n    self.n = 0\n\n  def inc(self):\n    self.n = self.n + 1\n    return self.n\n\nc = Counter()\n", &out))
	require.NoError(t, engine.Run("print c.inc()\n", &out))
	require.NoError(t, engine.Run("print c.inc()\n", &out))
	assert.Equal(t, "1\n2\n", out.String())
}

func TestInterpreterCompileOnly(t *testing.T) {
	_, err := Compile("print 1\n")
	require.NoError(t, err)

	_, err = Compile("class\n")
	require.Error(t, err)
}

func TestInterpreterRecursionLimit(t *testing.T) {
	engine := New(config.Limits{StepQuota: 0, RecursionLimit: 5})
	source := `class R:
  def f(self, n):
    return self.f(n + 1)

r = R()
r.f(0)
`
	var out strings.Builder
	err := engine.Run(source, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recursion limit exceeded")
}

func TestInterpreterStepQuota(t *testing.T) {
	engine := New(config.Limits{StepQuota: 3, RecursionLimit: 0})
	source := "a = 1\nb = 2\nc = 3\nd = 4\n"
	var out strings.Builder
	err := engine.Run(source, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step quota exceeded")
}
