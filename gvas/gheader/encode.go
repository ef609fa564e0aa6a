package gheader

import (
	"bl3-savior/gvas/lbytes"
)

func Encode(header Header) []byte {
	bs := make([]byte, 0, 64+len(header.CustomFormatData)*(lbytes.GUIDSize+4))
	bs = append(bs, MagicNumberBytes...)
	bs = append(bs, lbytes.EncodeU32(header.SaveGameVersion)...)
	bs = append(bs, lbytes.EncodeU32(header.PackageVersion)...)
	bs = append(bs, lbytes.EncodeU16(header.EngineMajor)...)
	bs = append(bs, lbytes.EncodeU16(header.EngineMinor)...)
	bs = append(bs, lbytes.EncodeU16(header.EnginePatch)...)
	bs = append(bs, lbytes.EncodeU32(header.EngineBuild)...)
	bs = append(bs, lbytes.EncodeString(header.BuildID)...)
	bs = append(bs, lbytes.EncodeU32(header.CustomFormatVersion)...)
	bs = append(bs, lbytes.EncodeU32(len(header.CustomFormatData))...)
	for _, entry := range header.CustomFormatData {
		bs = append(bs, lbytes.EncodeGUID(entry.GUID)...)
		bs = append(bs, lbytes.EncodeU32(entry.Entry)...)
	}
	bs = append(bs, lbytes.EncodeString(header.SaveGameType)...)
	return bs
}
