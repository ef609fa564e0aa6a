package gheader

import (
	"testing"

	"bl3-savior/gvas/lbytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func sampleHeader() Header {
	return Header{
		SaveGameVersion:     2,
		PackageVersion:      517,
		EngineMajor:         4,
		EngineMinor:         20,
		EnginePatch:         3,
		EngineBuild:         0x1f1a2b3c,
		BuildID:             ptr("OAK-PATCHWIN64-71"),
		CustomFormatVersion: 3,
		CustomFormatData: []FormatEntry{
			{GUID: lbytes.GUID{0x22, 0xd5, 0x54, 0x9c, 0xbe, 0x4f, 0x26, 0xa8, 0x46, 0x07, 0x21, 0x94, 0xd0, 0x82, 0xb4, 0x61}, Entry: 43},
			{GUID: lbytes.GUID{0xe4, 0x32, 0xd8, 0xb0, 0x0d, 0x4f, 0x89, 0x1f, 0xb7, 0x7e, 0xcf, 0xac, 0xa2, 0x4a, 0xfd, 0x36}, Entry: 10},
		},
		SaveGameType: ptr("OakSaveGame"),
	}
}

func TestEncodeDecode(t *testing.T) {
	header := sampleHeader()
	bs := Encode(header)
	assert.Equal(t, []byte("GVAS"), bs[:4])

	reader := lbytes.NewBytesReader(bs)
	decoded, err := Decode(reader)
	require.NoError(t, err)
	assert.Equal(t, header, *decoded)
	assert.Equal(t, 0, reader.Len())
}

func TestEncodeDecode_AbsentStrings(t *testing.T) {
	header := sampleHeader()
	header.BuildID = nil
	header.SaveGameType = ptr("")
	header.CustomFormatData = []FormatEntry{}

	decoded, err := Decode(lbytes.NewBytesReader(Encode(header)))
	require.NoError(t, err)
	assert.Nil(t, decoded.BuildID)
	require.NotNil(t, decoded.SaveGameType)
	assert.Equal(t, "", *decoded.SaveGameType)
	assert.Empty(t, decoded.CustomFormatData)
}

func TestEncode_FieldOffsets(t *testing.T) {
	bs := Encode(sampleHeader())
	assert.Equal(t, []byte{2, 0, 0, 0}, bs[4:8])
	assert.Equal(t, []byte{0x05, 0x02, 0, 0}, bs[8:12])
	assert.Equal(t, []byte{4, 0, 20, 0, 3, 0}, bs[12:18])
	assert.Equal(t, []byte{0x3c, 0x2b, 0x1a, 0x1f}, bs[18:22])
	// build id length counts the NUL byte
	assert.Equal(t, []byte{18, 0, 0, 0}, bs[22:26])
}

func TestDecode_BadMagic(t *testing.T) {
	bs := Encode(sampleHeader())
	copy(bs, "GVAX")
	_, err := Decode(lbytes.NewBytesReader(bs))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestDecode_Truncated(t *testing.T) {
	bs := Encode(sampleHeader())
	for _, n := range []int{0, 3, 10, 24, 40, len(bs) - 1} {
		_, err := Decode(lbytes.NewBytesReader(bs[:n]))
		require.Error(t, err, "prefix of %d bytes", n)
		assert.ErrorIs(t, err, lbytes.ErrMalformedInput, "prefix of %d bytes", n)
	}
}

func TestDecode_FormatCountTooLarge(t *testing.T) {
	header := sampleHeader()
	header.CustomFormatData = nil
	header.SaveGameType = nil
	bs := Encode(header)
	// the count sits right before the trailing 4-byte absent save game type
	countOffset := len(bs) - 8
	copy(bs[countOffset:], lbytes.EncodeU32(uint32(1_000_000)))

	_, err := Decode(lbytes.NewBytesReader(bs))
	assert.ErrorIs(t, err, lbytes.ErrMalformedInput)
}

func TestIsValidMagicNumber(t *testing.T) {
	assert.True(t, IsValidMagicNumber([]byte("GVAS")))
	assert.False(t, IsValidMagicNumber([]byte("GVA")))
	assert.False(t, IsValidMagicNumber([]byte{0x01, 0xB1, 0x00, 0x00}))
}
