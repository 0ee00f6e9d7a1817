package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernkeep/companion-api/internal/pkg/idgen"
)

func TestPrefixedGenerator(t *testing.T) {
	gen := idgen.NewPrefixed("mission")

	first := gen.Generate()
	second := gen.Generate()

	assert.True(t, strings.HasPrefix(first, "mission_"))
	assert.NotEqual(t, first, second)
}

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("enemy")

	id := gen.Generate()
	require.True(t, strings.HasPrefix(id, "enemy_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "enemy_"))
	assert.NoError(t, err)

	assert.NotEqual(t, id, gen.Generate())
}

func TestUUIDGenerator_NoPrefix(t *testing.T) {
	gen := idgen.NewUUID("")

	_, err := uuid.Parse(gen.Generate())
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("mission")

	assert.Equal(t, "mission_1", gen.Generate())
	assert.Equal(t, "mission_2", gen.Generate())
}

func TestRandomNumber(t *testing.T) {
	gen := &idgen.RandomNumber{}

	for i := 0; i < 100; i++ {
		assert.Positive(t, gen.GenerateNumber())
	}
}

func TestSequentialNumber(t *testing.T) {
	gen := &idgen.SequentialNumber{}

	assert.Equal(t, int64(1), gen.GenerateNumber())
	assert.Equal(t, int64(2), gen.GenerateNumber())
}
