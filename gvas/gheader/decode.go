package gheader

import (
	"bytes"

	"bl3-savior/gvas/lbytes"
	"github.com/pkg/errors"
)

func IsValidMagicNumber(bs []byte) bool {
	return bytes.Equal(bs, MagicNumberBytes)
}

func createMagicNumberReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return func() (any, error) {
		magicNumberBytes, err := reader.ReadBytes(MagicNumberSize)
		if err != nil {
			return nil, err
		}
		if !IsValidMagicNumber(magicNumberBytes) {
			err := errors.Wrapf(
				ErrBadMagic,
				`expected "%v", got "%v"`,
				MagicNumberBytes, magicNumberBytes,
			)
			return nil, err
		}
		return nil, nil
	}
}

func createFormatDataReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return func() (any, error) {
		count, err := reader.ReadU32()
		if err != nil {
			return nil, errors.Wrap(err, "read custom format data count")
		}
		// each entry takes 20 bytes, so a count the buffer cannot hold is
		// rejected before allocating
		if int64(count)*(lbytes.GUIDSize+4) > int64(reader.Len()) {
			err := errors.Wrapf(
				lbytes.ErrMalformedInput,
				"custom format data count %d exceeds remaining %d bytes",
				count, reader.Len(),
			)
			return nil, err
		}
		entries := make([]FormatEntry, 0, count)
		for i := uint32(0); i < count; i++ {
			guid, err := reader.ReadGUID()
			if err != nil {
				return nil, errors.Wrapf(err, "read custom format entry %d guid", i)
			}
			entry, err := reader.ReadU32()
			if err != nil {
				return nil, errors.Wrapf(err, "read custom format entry %d value", i)
			}
			entries = append(entries, FormatEntry{GUID: guid, Entry: entry})
		}
		return entries, nil
	}
}

// Decode reads every header field up to, but not including, the payload
// length.
func Decode(reader *lbytes.Reader) (*Header, error) {
	readMagicNumber := createMagicNumberReadFunction(reader)
	readU32 := lbytes.CreateU32ReadFunction(reader)
	readU16 := lbytes.CreateU16ReadFunction(reader)
	readString := lbytes.CreateStringReadFunction(reader)
	readFormatData := createFormatDataReadFunction(reader)

	headerInstructions := []lbytes.Instruction{
		{Key: "magic_number", ReadFunction: readMagicNumber},
		{Key: "save_game_version", ReadFunction: readU32},
		{Key: "package_version", ReadFunction: readU32},
		{Key: "engine_major", ReadFunction: readU16},
		{Key: "engine_minor", ReadFunction: readU16},
		{Key: "engine_patch", ReadFunction: readU16},
		{Key: "engine_build", ReadFunction: readU32},
		{Key: "build_id", ReadFunction: readString},
		{Key: "custom_format_version", ReadFunction: readU32},
		{Key: "custom_format_data", ReadFunction: readFormatData},
		{Key: "save_game_type", ReadFunction: readString},
	}

	header, err := lbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "gheader.Decode error")
	}

	return header, nil
}
