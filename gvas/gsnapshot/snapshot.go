// Package gsnapshot stores a GVAS container as a CBOR document: the header
// fields plus the decrypted payload. A snapshot carries everything needed to
// rebuild the original savegame file, unlike a bare payload export.
package gsnapshot

import (
	"bl3-savior/gvas"
	"bl3-savior/gvas/gheader"
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

type (
	Snapshot struct {
		Format  string         `cbor:"format"`
		Version uint           `cbor:"version"`
		Header  gheader.Header `cbor:"header"`
		Payload []byte         `cbor:"payload"`
	}
)

const (
	FormatName    = "bl3-savior/snapshot"
	FormatVersion = 1
)

var ErrNotSnapshot = errors.New("not a savegame snapshot")

// encMode uses Core Deterministic Encoding, so one container always produces
// the same snapshot bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("gsnapshot: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("gsnapshot: CBOR decoder initialization failed: " + err.Error())
	}
}

func Encode(container gvas.Container) ([]byte, error) {
	snapshot := Snapshot{
		Format:  FormatName,
		Version: FormatVersion,
		Header:  container.Header,
		Payload: container.Payload,
	}
	bs, err := encMode.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "gsnapshot.Encode error")
	}
	return bs, nil
}

func Decode(bs []byte) (*gvas.Container, error) {
	snapshot := Snapshot{}
	if err := decMode.Unmarshal(bs, &snapshot); err != nil {
		err := errors.Wrap(ErrNotSnapshot, err.Error())
		return nil, errors.Wrap(err, "gsnapshot.Decode error")
	}
	if snapshot.Format != FormatName {
		err := errors.Wrapf(ErrNotSnapshot, "format %q", snapshot.Format)
		return nil, errors.Wrap(err, "gsnapshot.Decode error")
	}
	if snapshot.Version != FormatVersion {
		err := errors.Errorf("unsupported snapshot version %d", snapshot.Version)
		return nil, errors.Wrap(err, "gsnapshot.Decode error")
	}
	container := gvas.Container{
		Header:  snapshot.Header,
		Payload: snapshot.Payload,
	}
	return &container, nil
}
