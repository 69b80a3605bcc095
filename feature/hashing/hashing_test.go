package hashing

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexDigest = regexp.MustCompile(`^[0-9a-f]{64}$`)

var samples = []string{"", "abc", "Ana", "a@x.com", "zoë ångström", strings.Repeat("x", 4096)}

func TestHash(t *testing.T) {
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", Hash("abc"))
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Hash(""))

	for _, s := range samples {
		assert.Regexp(t, hexDigest, Hash(s))
	}
}

func TestVerify(t *testing.T) {
	for _, s := range samples {
		assert.True(t, Verify(s, Hash(s)), s)
		assert.True(t, Verify(s, strings.ToUpper(Hash(s))), s)
		assert.False(t, Verify(s, Hash(s+"x")), s)
	}
}

func TestVerify_BadDigest(t *testing.T) {
	digest := Hash("abc")
	assert.False(t, Verify("abc", ""))
	assert.False(t, Verify("abc", digest[:63]))
	assert.False(t, Verify("abc", digest+"0"))
	assert.False(t, Verify("abc", strings.Repeat("z", 64)))
}
