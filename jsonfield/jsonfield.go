// Package jsonfield reads table cells from fixed key paths of JSON documents
// without decoding the whole document.
package jsonfield

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/buger/jsonparser"
	"github.com/fwojciec/donate"
)

// Value returns the value at the key path as a table cell.
//
// Strings are unescaped. Numbers and booleans keep their literal JSON text,
// arrays and objects are rendered as compact JSON. Missing keys, null and undecodable values are returned
// as donate.Null.
func Value(data []byte, keys ...string) donate.Value {
	raw, dataType, _, err := jsonparser.Get(data, keys...)
	if err != nil {
		return donate.Null()
	}
	switch dataType {
	case jsonparser.NotExist, jsonparser.Null, jsonparser.Unknown:
		return donate.Null()
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return donate.Null()
		}
		return donate.Text(s)
	case jsonparser.Array, jsonparser.Object:
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return donate.Null()
		}
		return donate.Text(buf.String())
	}
	return donate.Text(string(raw))
}

// Key unescapes a raw object key as passed to jsonparser.ObjectEach callbacks.
func Key(raw []byte) string {
	s, err := jsonparser.ParseString(raw)
	if err != nil {
		return string(raw)
	}
	return s
}

// Check returns EINVALID unless data starts like a JSON object or array.
// jsonparser reports most garbage as a missing key path, so documents are
// checked before their key paths are trusted to mean "no data".
func Check(data []byte) error {
	doc := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(doc) == 0 {
		return donate.Errorf(donate.EINVALID, "empty JSON document")
	}
	if doc[0] != '{' && doc[0] != '[' {
		return donate.Errorf(donate.EINVALID, "not a JSON document")
	}
	return nil
}

// Lookup returns the raw value at the key path.
// Returns ENOTFOUND if the path does not exist or holds null, and EINVALID
// if the document is malformed.
func Lookup(data []byte, keys ...string) ([]byte, jsonparser.ValueType, error) {
	raw, dataType, _, err := jsonparser.Get(data, keys...)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		if err := Check(data); err != nil {
			return nil, jsonparser.Unknown, err
		}
		return nil, jsonparser.NotExist, donate.Errorf(donate.ENOTFOUND, "key path %q not found", keys)
	} else if err != nil {
		return nil, jsonparser.Unknown, donate.Errorf(donate.EINVALID, "key path %q: %v", keys, err)
	}
	if dataType == jsonparser.Null {
		return nil, dataType, donate.Errorf(donate.ENOTFOUND, "key path %q is null", keys)
	}
	return raw, dataType, nil
}

// EachElement calls fn for every element of the array at the key path.
// Elements that are not objects are skipped. Returns ENOTFOUND if the path
// is absent or null, and EINVALID if the value is not a well-formed array.
func EachElement(data []byte, fn func(elem []byte), keys ...string) error {
	raw, dataType, err := Lookup(data, keys...)
	if err != nil {
		return err
	}
	if dataType != jsonparser.Array {
		return donate.Errorf(donate.EINVALID, "key path %q is %s, want array", keys, dataType)
	}
	var skipped int
	_, err = jsonparser.ArrayEach(raw, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if err != nil || dataType != jsonparser.Object {
			skipped++
			return
		}
		fn(value)
	})
	if err != nil {
		return donate.Errorf(donate.EINVALID, "key path %q: %v", keys, err)
	}
	if skipped > 0 {
		return donate.Errorf(donate.EINVALID, "key path %q: skipped %d malformed records", keys, skipped)
	}
	return nil
}

// EachMember calls fn for every member of the object at the key path, in
// document order. Returns ENOTFOUND if the path is absent or null, and
// EINVALID if the value is not a well-formed object.
func EachMember(data []byte, fn func(key string, value []byte, dataType jsonparser.ValueType), keys ...string) error {
	raw := data
	if len(keys) > 0 {
		var dataType jsonparser.ValueType
		var err error
		raw, dataType, err = Lookup(data, keys...)
		if err != nil {
			return err
		}
		if dataType != jsonparser.Object {
			return donate.Errorf(donate.EINVALID, "key path %q is %s, want object", keys, dataType)
		}
	}
	err := jsonparser.ObjectEach(raw, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		fn(Key(key), value, dataType)
		return nil
	})
	if err != nil {
		return donate.Errorf(donate.EINVALID, "object %q: %v", keys, err)
	}
	return nil
}
