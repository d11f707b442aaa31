package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	assert.Equal(t, "slot_full", Code(ErrSlotFull))
	assert.Equal(t, "store_read", Code(fmt.Errorf("read ledger: %w", ErrStoreRead)))
	assert.Equal(t, "", Code(errors.New("boom")))
	assert.Equal(t, "", Code(nil))
}

func TestCode_JoinedKeepsFirstDomainError(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrStoreWrite, errors.New("quota exceeded"))
	assert.True(t, errors.Is(err, ErrStoreWrite))
	assert.Equal(t, "store_write", Code(err))
}
