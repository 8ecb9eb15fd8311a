package protocol

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/dshills/motion/internal/command"
)

// Schema returns the JSON schema of a request, indented for display.
// Nested cursor actions are expressed through a $ref back to the request
// definition.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(&command.Request{})
	schema.Title = "motion request"
	schema.Description = "A command for the motion dispatcher."
	return json.MarshalIndent(schema, "", "  ")
}
