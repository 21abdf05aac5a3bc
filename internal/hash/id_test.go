package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestSumMatchesID(t *testing.T) {
	for _, s := range []string{"", "test", "Bandwidth", "ReferencePointID"} {
		assert.Equal(t, ID(s), Sum([]byte(s)), "Sum and ID disagree for %q", s)
	}
}

func TestDigestStreaming(t *testing.T) {
	data := []byte("warning block followed by error block")

	d := Digest()
	_, err := d.Write(data[:10])
	require.NoError(t, err)
	_, err = d.Write(data[10:])
	require.NoError(t, err)

	require.Equal(t, Sum(data), d.Sum64())
}

func BenchmarkID(b *testing.B) {
	name := "RFReferenceFrequencyOffset"
	for b.Loop() {
		ID(name)
	}
}
