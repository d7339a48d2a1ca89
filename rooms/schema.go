package rooms

import (
	"reflect"

	"github.com/automoto/generic-star/generics"
	"github.com/invopop/jsonschema"
)

type blockInstance struct {
	Type   string         `json:"type" jsonschema:"enum=Block"`
	Fields generics.Block `json:"fields"`
}

type playerInstance struct {
	Type   string          `json:"type" jsonschema:"enum=Player"`
	Fields generics.Player `json:"fields"`
}

func reflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{DoNotReference: true}
}

// JSONSchema describes an instance as one of the registered generic kinds.
func (Instance) JSONSchema() *jsonschema.Schema {
	r := reflector()
	variants := []*jsonschema.Schema{
		r.ReflectFromType(reflect.TypeOf(blockInstance{})),
		r.ReflectFromType(reflect.TypeOf(playerInstance{})),
	}
	for _, v := range variants {
		v.Version = ""
	}
	return &jsonschema.Schema{OneOf: variants}
}

// Schema returns the JSON schema for room files.
func Schema() *jsonschema.Schema {
	s := reflector().ReflectFromType(reflect.TypeOf(Room{}))
	s.Title = "Room"
	s.Description = "A level: its size, the view onto it and the generics placed in it."
	return s
}
