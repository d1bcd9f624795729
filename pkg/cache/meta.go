package cache

import (
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/chazu/planwire/pkg/plan"
)

// cborEncMode is configured for canonical encoding so metadata bytes are
// deterministic.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cache: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Meta describes one cached plan entry.
type Meta struct {
	ID        string       `cbor:"id"`
	CreatedAt time.Time    `cbor:"created_at"`
	StreamLen int          `cbor:"stream_len"`
	Command   plan.CmdType `cbor:"command"`
}

// NewMeta stamps metadata for a plan stream about to be stored.
func NewMeta(streamLen int, command plan.CmdType) Meta {
	return Meta{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		StreamLen: streamLen,
		Command:   command,
	}
}

// MarshalMeta serializes entry metadata to CBOR bytes.
func MarshalMeta(m *Meta) ([]byte, error) {
	return cborEncMode.Marshal(m)
}

// UnmarshalMeta deserializes entry metadata from CBOR bytes.
func UnmarshalMeta(data []byte) (*Meta, error) {
	var m Meta
	if err := cbor.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("cache: unmarshal meta: %w", err)
	}
	return &m, nil
}
