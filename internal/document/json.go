package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
)

const formatJSON = "json"

// DecodeJSON decodes a JSON document whose root is an object.
func DecodeJSON(data []byte) (*Object, error) {
	return DecodeJSONReader(bytes.NewReader(data))
}

// DecodeJSONReader decodes a JSON document from r, keeping object keys in
// the order they appear in the input.
func DecodeJSONReader(r io.Reader) (*Object, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeJSONValue(dec, "")
	if err != nil {
		return nil, err
	}

	root, ok := v.(*Object)
	if !ok {
		return nil, &DecodeError{Format: formatJSON, Err: fmt.Errorf("root must be an object, got %s", CategoryOf(v))}
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &DecodeError{Format: formatJSON, Err: errors.New("unexpected data after root object")}
	}

	return root, nil
}

func decodeJSONValue(dec *json.Decoder, path string) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return nil, &DecodeError{Format: formatJSON, Path: path, Err: err}
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec, path)
		case '[':
			return decodeJSONList(dec, path)
		default:
			return nil, &DecodeError{Format: formatJSON, Path: path, Err: fmt.Errorf("unexpected delimiter %q", rune(t))}
		}
	case string:
		return t, nil
	case bool:
		return t, nil
	case json.Number:
		return Number(t), nil
	case float64:
		return Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case nil:
		return nil, nil
	default:
		return nil, &DecodeError{Format: formatJSON, Path: path, Err: fmt.Errorf("unexpected token %v", tok)}
	}
}

func decodeJSONObject(dec *json.Decoder, path string) (*Object, error) {
	o := &Object{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, &DecodeError{Format: formatJSON, Path: path, Err: err}
		}

		key, ok := tok.(string)
		if !ok {
			return nil, &DecodeError{Format: formatJSON, Path: path, Err: fmt.Errorf("expected object key, got %v", tok)}
		}

		kp := childPath(path, key)

		v, err := decodeJSONValue(dec, kp)
		if err != nil {
			return nil, err
		}

		if err := o.add(key, v); err != nil {
			return nil, &DecodeError{Format: formatJSON, Path: path, Err: err}
		}
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, &DecodeError{Format: formatJSON, Path: path, Err: err}
	}

	return o, nil
}

func decodeJSONList(dec *json.Decoder, path string) (List, error) {
	list := List{}

	for i := 0; dec.More(); i++ {
		v, err := decodeJSONValue(dec, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}

		list = append(list, v)
	}

	// closing bracket
	if _, err := dec.Token(); err != nil {
		return nil, &DecodeError{Format: formatJSON, Path: path, Err: err}
	}

	return list, nil
}

// EncodeJSON renders a document value back to JSON, preserving key order.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeJSONValue(&buf, v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func encodeJSONValue(buf *bytes.Buffer, v any) error {
	switch t := v.(type) {
	case *Object:
		buf.WriteByte('{')

		for i, e := range t.Entries() {
			if i > 0 {
				buf.WriteByte(',')
			}

			key, err := json.Marshal(e.Key)
			if err != nil {
				return err
			}

			buf.Write(key)
			buf.WriteByte(':')

			if err := encodeJSONValue(buf, e.Value); err != nil {
				return err
			}
		}

		buf.WriteByte('}')
	case List:
		buf.WriteByte('[')

		for i, item := range t {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := encodeJSONValue(buf, item); err != nil {
				return err
			}
		}

		buf.WriteByte(']')
	case Number:
		buf.WriteString(string(t))
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return err
		}

		buf.Write(b)
	}

	return nil
}
