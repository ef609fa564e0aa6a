package save

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
)

// PayloadDigest returns the hex BLAKE3-256 digest of the encoded payload.
// Two saves with the same digest hold the same character, whatever their
// headers say.
func (s *Save) PayloadDigest() (string, error) {
	payload, err := s.PayloadBytes()
	if err != nil {
		return "", errors.Wrap(err, "save.PayloadDigest error")
	}
	sum := blake3.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
