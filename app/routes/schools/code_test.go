package schools

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchoolCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := generateSchoolCode()
		require.NoError(t, err)
		assert.Len(t, code, codeLength)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune(codeCharset, ch), "unexpected character %q in %s", ch, code)
		}
		seen[code] = true
	}
	// 50 independent draws from a 36^8 space should never collide.
	assert.Len(t, seen, 50)
}

func TestUniqueCode(t *testing.T) {
	t.Run("retries past taken codes", func(t *testing.T) {
		calls := 0
		code, err := uniqueCode(func(string) (bool, error) {
			calls++
			return calls < 3, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Len(t, code, codeLength)
	})

	t.Run("propagates lookup errors", func(t *testing.T) {
		boom := errors.New("connection reset")
		_, err := uniqueCode(func(string) (bool, error) {
			return false, boom
		})
		assert.ErrorIs(t, err, boom)
	})
}
