package aggregate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ParseForm decodes a flat JSON object into fields in document order.
// Go maps would lose the key order, and the order of the payload determines
// the order of sections and questions in the rendered report, so the body is
// walked token by token instead of bound to a map.
//
// Scalar values (numbers, booleans, null) are coerced to their string form;
// nested objects or arrays make the payload malformed.
func ParseForm(r io.Reader) ([]Field, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("payload must be a JSON object")
	}

	var fields []Field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read field key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.New("payload key is not a string")
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read field %q: %w", key, err)
		}
		val, err := scalarString(valTok)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}

		fields = append(fields, Field{Key: key, Value: val})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read payload end: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("payload has trailing content")
	}

	return fields, nil
}

func scalarString(tok json.Token) (string, error) {
	switch v := tok.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", nil
	default:
		return "", errors.New("payload must be a flat object of scalar values")
	}
}
