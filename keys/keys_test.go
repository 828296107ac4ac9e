package keys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"chained_hashtable/hashtable"
	"chained_hashtable/keys"
)

func TestEqualKeysHashEqually(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		a, b := keys.String(s), keys.String(string([]byte(s)))
		assert.True(t, a.Equal(b))
		assert.Equal(t, a.HashCode(), b.HashCode())

		i := rapid.Int().Draw(t, "i")
		assert.Equal(t, i, keys.Int(i).HashCode())
	})
}

func TestUUID(t *testing.T) {
	assert := assert.New(t)

	u := keys.NewUUID()
	parsed, err := keys.ParseUUID(u.String())
	require.NoError(t, err)
	assert.True(u.Equal(parsed))
	assert.Equal(u.HashCode(), parsed.HashCode())
	assert.False(u.Equal(keys.NewUUID()))

	_, err = keys.ParseUUID("not-a-uuid")
	assert.Error(err)
}

func TestKeysInTable(t *testing.T) {
	assert := assert.New(t)

	strs := hashtable.MustNew[keys.String, int](16)
	ids := hashtable.MustNew[keys.UUID, string](16)
	var stored []keys.UUID
	for i, w := range []string{"alpha", "beta", "gamma", "delta"} {
		strs.Add(keys.String(w), i)
		u := keys.NewUUID()
		ids.Add(u, w)
		stored = append(stored, u)
	}

	v, ok := strs.Get("gamma")
	assert.True(ok)
	assert.Equal(2, v)
	_, ok = strs.Get("epsilon")
	assert.False(ok)

	w, ok := ids.Get(stored[1])
	assert.True(ok)
	assert.Equal("beta", w)
	ids.TryRemove(stored[1])
	_, ok = ids.Get(stored[1])
	assert.False(ok)
}
