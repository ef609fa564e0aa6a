package oak

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tidwall/jsonc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

var (
	renderOptions = protojson.MarshalOptions{
		UseProtoNames:   true,
		EmitUnpopulated: true,
	}
	parseOptions = protojson.UnmarshalOptions{}
)

func (s MissionState) String() string {
	value := missionStatusDescriptor.Enums().ByName("MissionState").Values().ByNumber(protoreflect.EnumNumber(s))
	if value == nil {
		return strconv.Itoa(int(s))
	}
	return string(value.Name())
}

// RenderText renders the character as the protobuf JSON mapping, keyed by
// field name, with every schema field present.
func (c *Character) RenderText() ([]byte, error) {
	bs, err := c.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "oak.Character.RenderText error")
	}
	message := dynamicpb.NewMessage(CharacterDescriptor)
	if err := proto.Unmarshal(bs, message); err != nil {
		return nil, errors.Wrap(err, "oak.Character.RenderText error")
	}
	compact, err := renderOptions.Marshal(message)
	if err != nil {
		return nil, errors.Wrap(err, "oak.Character.RenderText error")
	}
	// protojson varies its spacing from build to build
	text := bytes.Buffer{}
	if err := json.Indent(&text, compact, "", "  "); err != nil {
		return nil, errors.Wrap(err, "oak.Character.RenderText error")
	}
	return text.Bytes(), nil
}

// ParseText is the inverse of RenderText. Comments and trailing commas are
// accepted; keys that name no field are not.
func (c *Character) ParseText(text []byte) error {
	message := dynamicpb.NewMessage(CharacterDescriptor)
	if err := parseOptions.Unmarshal(jsonc.ToJSON(text), message); err != nil {
		return errors.Wrap(err, "oak.Character.ParseText error")
	}
	if err := proto.CheckInitialized(message); err != nil {
		return errors.Wrap(err, "oak.Character.ParseText error")
	}
	bs, err := proto.MarshalOptions{Deterministic: true}.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "oak.Character.ParseText error")
	}
	parsed := Character{}
	if err := parsed.Unmarshal(bs); err != nil {
		return errors.Wrap(err, "oak.Character.ParseText error")
	}
	*c = parsed
	return nil
}
