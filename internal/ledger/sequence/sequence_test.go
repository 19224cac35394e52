package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avstrong/hotelledger/internal/ledger/sequence"
)

func TestNextAdvancesCallerCounter(t *testing.T) {
	counter := 0
	gen := sequence.New(&counter)

	assert.Equal(t, 1, gen.Next())
	assert.Equal(t, 2, gen.Next())
	assert.Equal(t, 2, counter)
}

func TestNextResumesFromExistingCounter(t *testing.T) {
	counter := 41

	assert.Equal(t, 42, sequence.New(&counter).Next())
}
