// Package save is the editing layer over a decoded Borderlands 3 savegame:
// the GVAS header, the character message, and the operations that keep the
// character's parallel arrays and item indexes consistent.
//
// A Save is not safe for concurrent use.
package save

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"bl3-savior/gvas"
	"bl3-savior/gvas/genvelope"
	"bl3-savior/gvas/gheader"
	"bl3-savior/gvas/gsnapshot"
	"bl3-savior/oak"
	"github.com/pkg/errors"
)

type (
	Save struct {
		Header    gheader.Header
		Character *oak.Character
		logger    *slog.Logger
	}
	Option func(s *Save)
)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Save) {
		s.logger = logger
	}
}

func New(header gheader.Header, character *oak.Character, options ...Option) *Save {
	s := Save{
		Header:    header,
		Character: character,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(&s)
	}
	return &s
}

// Load accepts either a GVAS savegame or a snapshot.
func Load(bs []byte, options ...Option) (*Save, error) {
	container, err := decodeContainer(bs)
	if err != nil {
		return nil, errors.Wrap(err, "save.Load error")
	}

	s := New(container.Header, nil, options...)
	s.logHeader()
	if err := s.ImportProtobuf(container.Payload); err != nil {
		return nil, errors.Wrap(err, "save.Load error")
	}
	return s, nil
}

// decodeContainer reads bs as a snapshot when it lacks the GVAS magic. Bytes
// that are not a snapshot either get the GVAS decoder's error.
func decodeContainer(bs []byte) (*gvas.Container, error) {
	if gvas.IsGVASFile(bs) {
		return gvas.Decode(bs)
	}
	container, err := gsnapshot.Decode(bs)
	if errors.Is(err, gsnapshot.ErrNotSnapshot) {
		return gvas.Decode(bs)
	}
	return container, err
}

func Open(path string, options ...Option) (*Save, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "save.Open error")
	}
	s, err := Load(bs, options...)
	if err != nil {
		return nil, errors.Wrapf(err, "save.Open error reading %q", path)
	}
	s.logger.Debug("loaded save", "path", path, "bytes", len(bs))
	return s, nil
}

func (s *Save) logHeader() {
	h := s.Header
	s.logger.Debug(
		"savegame header",
		"save_game_version", h.SaveGameVersion,
		"package_version", h.PackageVersion,
		"engine_version", EngineVersion(h),
		"build_id", derefString(h.BuildID),
		"custom_format_version", h.CustomFormatVersion,
		"custom_format_count", len(h.CustomFormatData),
		"save_game_type", derefString(h.SaveGameType),
	)
}

// ImportProtobuf replaces the character with one decoded from a raw
// payload. On failure the current character is kept.
func (s *Save) ImportProtobuf(payload []byte) error {
	character := oak.Character{}
	if err := genvelope.Decode(payload, &character); err != nil {
		return errors.Wrap(err, "save.ImportProtobuf error")
	}
	s.Character = &character
	return nil
}

// ImportText replaces the character with one parsed from its text form.
// On failure the current character is kept.
func (s *Save) ImportText(text []byte) error {
	character := oak.Character{}
	if err := genvelope.FromText(text, &character); err != nil {
		return errors.Wrap(err, "save.ImportText error")
	}
	s.Character = &character
	return nil
}

func (s *Save) PayloadBytes() ([]byte, error) {
	if s.Character == nil {
		return nil, errors.New("save.PayloadBytes error: no character loaded")
	}
	bs, err := genvelope.Encode(s.Character)
	if err != nil {
		return nil, errors.Wrap(err, "save.PayloadBytes error")
	}
	return bs, nil
}

func (s *Save) Text() ([]byte, error) {
	text, err := genvelope.ToText(s.Character)
	if err != nil {
		return nil, errors.Wrap(err, "save.Text error")
	}
	return text, nil
}

func (s *Save) Container() (*gvas.Container, error) {
	payload, err := s.PayloadBytes()
	if err != nil {
		return nil, err
	}
	container := gvas.Container{
		Header:  s.Header,
		Payload: payload,
	}
	return &container, nil
}

func (s *Save) Bytes() ([]byte, error) {
	container, err := s.Container()
	if err != nil {
		return nil, errors.Wrap(err, "save.Bytes error")
	}
	return gvas.Encode(*container), nil
}

func (s *Save) Snapshot() ([]byte, error) {
	container, err := s.Container()
	if err != nil {
		return nil, errors.Wrap(err, "save.Snapshot error")
	}
	return gsnapshot.Encode(*container)
}

// WriteSavegame and the other Write functions build the whole output before
// touching the file, so an encoding failure never leaves a partial file.
func (s *Save) WriteSavegame(path string) error {
	bs, err := s.Bytes()
	if err != nil {
		return err
	}
	return s.writeFile(path, bs, "savegame")
}

func (s *Save) WriteProtobuf(path string) error {
	bs, err := s.PayloadBytes()
	if err != nil {
		return err
	}
	return s.writeFile(path, bs, "protobuf")
}

func (s *Save) WriteText(path string) error {
	bs, err := s.Text()
	if err != nil {
		return err
	}
	return s.writeFile(path, bs, "json")
}

func (s *Save) WriteSnapshot(path string) error {
	bs, err := s.Snapshot()
	if err != nil {
		return err
	}
	return s.writeFile(path, bs, "snapshot")
}

func (s *Save) writeFile(path string, bs []byte, format string) error {
	if err := os.WriteFile(path, bs, 0644); err != nil {
		return errors.Wrapf(err, "error writing %s to %q", format, path)
	}
	s.logger.Info("wrote save", "path", path, "format", format, "bytes", len(bs))
	return nil
}

func EngineVersion(h gheader.Header) string {
	return fmt.Sprintf("%d.%d.%d.%d", h.EngineMajor, h.EngineMinor, h.EnginePatch, h.EngineBuild)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
