package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"bl3-savior/save"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/ini.v1"
)

// Two text forms carry items between saves. The line form is one
// "BL3(<base64>)" serial per line, with '#' comments and blank lines around
// them:
//
//	# item 1 (pickup order 12)
//	BL3(AwAAAADnnIA=)
//
// The INI form has one section per item:
//
//	[item 1]
//	serial       = BL3(AwAAAADnnIA=)
//	pickup_order = 12
//	flags        = seen,favorite
//
// Only the serial is read back. Imported items always get fresh flags and
// pickup order.

const (
	iniSerialKey      = "serial"
	iniPickupOrderKey = "pickup_order"
	iniFlagsKey       = "flags"
)

var flagNames = []lo.Tuple2[save.ItemFlags, string]{
	{A: save.FlagSeen, B: "seen"},
	{A: save.FlagFavorite, B: "favorite"},
	{A: save.FlagTrash, B: "trash"},
}

func FlagNames(flags save.ItemFlags) []string {
	return lo.FilterMap(flagNames, func(flag lo.Tuple2[save.ItemFlags, string], _ int) (string, bool) {
		return flag.B, flags.Has(flag.A)
	})
}

func WriteItemLines(w io.Writer, items []*save.Item) error {
	buf := bytes.Buffer{}
	for i, item := range items {
		fmt.Fprintf(&buf, "# item %d (pickup order %d)\n", i+1, item.PickupOrderIndex())
		buf.WriteString(item.SerialBase64())
		buf.WriteString("\n\n")
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "cli.WriteItemLines error")
	}
	return nil
}

// ReadItemLines returns every line that looks like a serial. Other lines
// are skipped.
func ReadItemLines(r io.Reader) ([]string, error) {
	serials := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if save.IsSerialBase64(line) {
			serials = append(serials, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "cli.ReadItemLines error")
	}
	return serials, nil
}

func WriteItemsINI(w io.Writer, items []*save.Item) error {
	file := ini.Empty()
	for i, item := range items {
		section, err := file.NewSection(fmt.Sprintf("item %d", i+1))
		if err != nil {
			return errors.Wrap(err, "cli.WriteItemsINI error")
		}
		keys := []lo.Tuple2[string, string]{
			{A: iniSerialKey, B: item.SerialBase64()},
			{A: iniPickupOrderKey, B: strconv.Itoa(int(item.PickupOrderIndex()))},
			{A: iniFlagsKey, B: strings.Join(FlagNames(item.Flags()), ",")},
		}
		for _, key := range keys {
			if _, err := section.NewKey(key.A, key.B); err != nil {
				return errors.Wrap(err, "cli.WriteItemsINI error")
			}
		}
	}
	if _, err := file.WriteTo(w); err != nil {
		return errors.Wrap(err, "cli.WriteItemsINI error")
	}
	return nil
}

// ReadItemsINI returns the serial of every section, in file order. A
// section without a serial key is an error.
func ReadItemsINI(bs []byte) ([]string, error) {
	file, err := ini.Load(bs)
	if err != nil {
		return nil, errors.Wrap(err, "cli.ReadItemsINI error")
	}
	serials := make([]string, 0)
	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		if !section.HasKey(iniSerialKey) {
			return nil, errors.Errorf("cli.ReadItemsINI error: section [%s] has no %s key", section.Name(), iniSerialKey)
		}
		serials = append(serials, section.Key(iniSerialKey).String())
	}
	return serials, nil
}

// ReadItemsFile picks the form from the extension: ".ini" is INI, anything
// else is the line form.
func ReadItemsFile(path string) ([]string, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cli.ReadItemsFile error")
	}
	if strings.EqualFold(filepath.Ext(path), ".ini") {
		return ReadItemsINI(bs)
	}
	return ReadItemLines(bytes.NewReader(bs))
}

// ImportItems adds every serial of the file at path as a new item. Nothing
// is added when any serial fails to decode.
func ImportItems(s *save.Save, path string, p *printer) (int, error) {
	p.Println(" - Importing items from " + path)
	serials, err := ReadItemsFile(path)
	if err != nil {
		return 0, err
	}
	decoded := make([][]byte, 0, len(serials))
	for _, serial := range serials {
		bs, err := save.DecodeSerialBase64(serial)
		if err != nil {
			return 0, errors.Wrapf(err, "cli.ImportItems error in %s", path)
		}
		decoded = append(decoded, bs)
	}
	for _, bs := range decoded {
		item, index := s.AddNewItem(bs)
		p.Printf("   + item %d: %s\n", index+1, item.SerialBase64())
	}
	p.Printf("   - Added Item Count: %d\n", len(decoded))
	return len(decoded), nil
}
