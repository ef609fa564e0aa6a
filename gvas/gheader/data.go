package gheader

import (
	"bl3-savior/gvas/lbytes"
	"github.com/pkg/errors"
)

type (
	Header struct {
		SaveGameVersion     uint32        `json:"save_game_version"`
		PackageVersion      uint32        `json:"package_version"`
		EngineMajor         uint16        `json:"engine_major"`
		EngineMinor         uint16        `json:"engine_minor"`
		EnginePatch         uint16        `json:"engine_patch"`
		EngineBuild         uint32        `json:"engine_build"`
		BuildID             *string       `json:"build_id"`
		CustomFormatVersion uint32        `json:"custom_format_version"`
		CustomFormatData    []FormatEntry `json:"custom_format_data"`
		SaveGameType        *string       `json:"save_game_type"`
	}
	FormatEntry struct {
		GUID  lbytes.GUID `json:"guid"`
		Entry uint32      `json:"entry"`
	}
)

const (
	MagicNumberSize = 4
)

var (
	MagicNumberBytes = []byte("GVAS")
	ErrBadMagic      = errors.New("bad magic number")
)
