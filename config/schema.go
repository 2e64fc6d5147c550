// Copyright (c) 2025, Zendar. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// recordSchema validates one configuration record. Known layer fields
// get type checks; unknown fields pass through so panels can store
// their own keys in the same file.
const recordSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "visible": {"type": "boolean"},
    "frameId": {"type": "string"},
    "size": {"type": "number", "exclusiveMinimum": 0},
    "divisions": {"type": "integer", "minimum": 1},
    "lineWidth": {"type": "number", "minimum": 0},
    "color": {"type": "string"},
    "position": {"type": "array", "items": {"type": "number"}, "minItems": 3, "maxItems": 3},
    "rotation": {"type": "array", "items": {"type": "number"}, "minItems": 3, "maxItems": 3},
    "rangeMarkers": {
      "type": "object",
      "properties": {
        "visible": {"type": "boolean"},
        "followCamera": {"type": "boolean"},
        "followNudge": {"type": "array", "items": {"type": "number"}, "minItems": 2, "maxItems": 2},
        "position": {"type": "array", "items": {"type": "number"}, "minItems": 2, "maxItems": 2},
        "fontSize": {"type": "number", "minimum": 0},
        "fontColor": {"type": "string"}
      }
    }
  }
}`

var compiledRecordSchema = jsonschema.MustCompileString("record.schema.json", recordSchema)

// validateRecord checks one raw record against the record schema.
func validateRecord(raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	return compiledRecordSchema.Validate(v)
}
