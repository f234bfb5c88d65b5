package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Document navigation helpers.
//
// The IndoorGML JSON documents this package consumes are produced by a
// mechanical XML→JSON conversion, so the interesting values live at fixed,
// deeply nested paths. Navigation is expressed as declarative step lists
// ("spaceLayers[0]", "spaceLayer", ...) rather than ad hoc indexing, and
// every failure reports the full resolved path.

// descend walks v through the given steps and returns the resolved value
// together with its full path. A step is a field name, optionally followed
// by a literal array index ("spaceLayers[0]").
//
// Missing fields, explicit nulls, non-object intermediates, and
// wrong-shaped or short arrays all produce ErrMalformedDocument.
func descend(v interface{}, base string, steps ...string) (interface{}, string, error) {
	path := base
	for _, step := range steps {
		key := step
		index := -1
		if open := strings.IndexByte(step, '['); open >= 0 {
			key = step[:open]
			n, err := strconv.Atoi(strings.TrimSuffix(step[open+1:], "]"))
			if err != nil {
				return nil, path, malformed(path, "internal: bad step %q", step)
			}
			index = n
		}

		obj, ok := v.(map[string]interface{})
		if !ok {
			return nil, path, malformed(path, "expected object, got %s", typeName(v))
		}

		next, present := obj[key]
		path = joinPath(path, key)
		if !present || next == nil {
			return nil, path, malformed(path, "required field is missing")
		}

		if index >= 0 {
			arr, ok := next.([]interface{})
			if !ok {
				return nil, path, malformed(path, "expected array, got %s", typeName(next))
			}
			if index >= len(arr) {
				return nil, path, malformed(path, "array has %d elements, need index %d", len(arr), index)
			}
			path = fmt.Sprintf("%s[%d]", path, index)
			next = arr[index]
			if next == nil {
				return nil, path, malformed(path, "element is null")
			}
		}

		v = next
	}
	return v, path, nil
}

// requiredArray resolves steps from v and asserts the result is an array.
func requiredArray(v interface{}, base string, steps ...string) ([]interface{}, string, error) {
	resolved, path, err := descend(v, base, steps...)
	if err != nil {
		return nil, path, err
	}
	arr, ok := resolved.([]interface{})
	if !ok {
		return nil, path, malformed(path, "expected array, got %s", typeName(resolved))
	}
	return arr, path, nil
}

// requiredObject resolves steps from v and asserts the result is an object.
func requiredObject(v interface{}, base string, steps ...string) (map[string]interface{}, string, error) {
	resolved, path, err := descend(v, base, steps...)
	if err != nil {
		return nil, path, err
	}
	obj, ok := resolved.(map[string]interface{})
	if !ok {
		return nil, path, malformed(path, "expected object, got %s", typeName(resolved))
	}
	return obj, path, nil
}

// requiredString reads a mandatory string field from obj.
func requiredString(obj map[string]interface{}, path, key string) (string, error) {
	v, present := obj[key]
	if !present || v == nil {
		return "", malformed(joinPath(path, key), "required field is missing")
	}
	s, ok := v.(string)
	if !ok {
		return "", malformed(joinPath(path, key), "expected string, got %s", typeName(v))
	}
	return s, nil
}

// optionalString reads a plain string field, defaulting to "" when the field
// is absent, null, or not a string. Used for GML attributes like "id".
func optionalString(obj map[string]interface{}, key string) string {
	s, _ := obj[key].(string)
	return s
}

// optionalText reads a GML text element serialized as {"value": "..."},
// defaulting to "" when the element is absent or null. Used for
// "description" on transitions and cell features.
func optionalText(obj map[string]interface{}, key string) string {
	elem, ok := obj[key].(map[string]interface{})
	if !ok {
		return ""
	}
	s, _ := elem["value"].(string)
	return s
}

// optionalRef reads an xlink reference serialized as {"href": "..."},
// defaulting to "" when the element is absent or null. Used for "duality".
func optionalRef(obj map[string]interface{}, key string) string {
	elem, ok := obj[key].(map[string]interface{})
	if !ok {
		return ""
	}
	s, _ := elem["href"].(string)
	return s
}

// coordTriple reads the first three components of a numeric coordinate
// array. Arrays shorter than 3 or with non-numeric leaves are malformed;
// extra components are ignored.
func coordTriple(v interface{}, path string) (x, y, z float64, err error) {
	arr, ok := v.([]interface{})
	if !ok {
		return 0, 0, 0, malformed(path, "expected coordinate array, got %s", typeName(v))
	}
	if len(arr) < 3 {
		return 0, 0, 0, malformed(path, "coordinate array has %d components, need 3", len(arr))
	}
	coords := [3]float64{}
	for i := 0; i < 3; i++ {
		n, ok := arr[i].(float64)
		if !ok {
			return 0, 0, 0, malformed(fmt.Sprintf("%s[%d]", path, i),
				"expected number, got %s", typeName(arr[i]))
		}
		coords[i] = n
	}
	return coords[0], coords[1], coords[2], nil
}

// joinPath appends a field name to a dotted path.
func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// typeName describes a decoded JSON value for error messages.
func typeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
