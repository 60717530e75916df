// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ValueKind string

const (
	KindNull   ValueKind = "null"
	KindString ValueKind = "string"
	KindNumber ValueKind = "number"
	KindBool   ValueKind = "boolean"
	KindDate   ValueKind = "date"
	KindRecord ValueKind = "record"
)

// Value is a closed sum of the scalar and record shapes an audited field can
// hold. Only the member matching Kind is meaningful.
type Value struct {
	Kind   ValueKind
	Str    string
	Num    float64
	Bool   bool
	Date   time.Time
	Record map[string]Value
}

func NullValue() *Value {
	return &Value{Kind: KindNull}
}

func StringValue(s string) *Value {
	return &Value{Kind: KindString, Str: s}
}

func NumberValue(n float64) *Value {
	return &Value{Kind: KindNumber, Num: n}
}

func BoolValue(b bool) *Value {
	return &Value{Kind: KindBool, Bool: b}
}

func DateValue(t time.Time) *Value {
	return &Value{Kind: KindDate, Date: t.UTC()}
}

func RecordValue(r map[string]Value) *Value {
	return &Value{Kind: KindRecord, Record: r}
}

// ValueOf converts a Go value into a Value. Unknown types are rendered with
// fmt so nothing is silently dropped from an audit trail.
func ValueOf(v interface{}) *Value {
	switch t := v.(type) {
	case nil:
		return NullValue()
	case *Value:
		if t == nil {
			return NullValue()
		}
		return t
	case Value:
		return &t
	case string:
		return StringValue(t)
	case bool:
		return BoolValue(t)
	case int:
		return NumberValue(float64(t))
	case int32:
		return NumberValue(float64(t))
	case int64:
		return NumberValue(float64(t))
	case float32:
		return NumberValue(float64(t))
	case float64:
		return NumberValue(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return StringValue(t.String())
		}
		return NumberValue(f)
	case time.Time:
		return DateValue(t)
	case *time.Time:
		if t == nil {
			return NullValue()
		}
		return DateValue(*t)
	case primitive.DateTime:
		return DateValue(t.Time())
	case primitive.ObjectID:
		return StringValue(t.Hex())
	case *primitive.ObjectID:
		if t == nil {
			return NullValue()
		}
		return StringValue(t.Hex())
	case map[string]interface{}:
		r := make(map[string]Value, len(t))
		for k, e := range t {
			r[k] = *ValueOf(e)
		}
		return RecordValue(r)
	case bson.M:
		return ValueOf(map[string]interface{}(t))
	case bson.D:
		return ValueOf(t.Map())
	case fmt.Stringer:
		return StringValue(t.String())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return NullValue()
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		r := make(map[string]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			r[fmt.Sprint(i)] = *ValueOf(rv.Index(i).Interface())
		}
		return RecordValue(r)
	case reflect.String:
		return StringValue(rv.String())
	}

	return StringValue(fmt.Sprint(v))
}

// Interface returns the plain Go representation used for serialisation
func (v *Value) Interface() interface{} {
	if v == nil {
		return nil
	}

	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num
	case KindBool:
		return v.Bool
	case KindDate:
		return v.Date
	case KindRecord:
		m := make(map[string]interface{}, len(v.Record))
		for k, e := range v.Record {
			e := e
			m[k] = e.Interface()
		}
		return m
	default:
		return nil
	}
}

// String renders the value for free text search and logging
func (v *Value) String() string {
	if v == nil {
		return ""
	}

	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		if v.Num == math.Trunc(v.Num) && math.Abs(v.Num) < 1e15 {
			return fmt.Sprintf("%d", int64(v.Num))
		}
		return fmt.Sprint(v.Num)
	case KindBool:
		return fmt.Sprint(v.Bool)
	case KindDate:
		return v.Date.Format(time.RFC3339Nano)
	case KindRecord:
		keys := make([]string, 0, len(v.Record))
		for k := range v.Record {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := "{"
		for i, k := range keys {
			e := v.Record[k]
			if i > 0 {
				out += ", "
			}
			out += k + ": " + e.String()
		}
		return out + "}"
	default:
		return "null"
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	*v = *fromJSON(raw)
	return nil
}

func fromJSON(raw interface{}) *Value {
	switch t := raw.(type) {
	case []interface{}:
		r := make(map[string]Value, len(t))
		for i, e := range t {
			r[fmt.Sprint(i)] = *fromJSON(e)
		}
		return RecordValue(r)
	case map[string]interface{}:
		r := make(map[string]Value, len(t))
		for k, e := range t {
			r[k] = *fromJSON(e)
		}
		return RecordValue(r)
	}

	return ValueOf(raw)
}

func (v Value) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch v.Kind {
	case KindNull, "":
		return bsontype.Null, nil, nil
	case KindDate:
		return bson.MarshalValue(primitive.NewDateTimeFromTime(v.Date))
	case KindRecord:
		doc := bson.M{}
		for k, e := range v.Record {
			doc[k] = e
		}
		return bson.MarshalValue(doc)
	}

	return bson.MarshalValue(v.Interface())
}

func (v *Value) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.Null, bsontype.Undefined:
		*v = Value{Kind: KindNull}
	case bsontype.String:
		*v = *StringValue(raw.StringValue())
	case bsontype.Boolean:
		*v = *BoolValue(raw.Boolean())
	case bsontype.Double:
		*v = *NumberValue(raw.Double())
	case bsontype.Int32:
		*v = *NumberValue(float64(raw.Int32()))
	case bsontype.Int64:
		*v = *NumberValue(float64(raw.Int64()))
	case bsontype.DateTime:
		*v = *DateValue(raw.Time())
	case bsontype.ObjectID:
		*v = *StringValue(raw.ObjectID().Hex())
	case bsontype.EmbeddedDocument:
		r := map[string]Value{}
		if err := bson.Unmarshal(raw.Document(), &r); err != nil {
			return err
		}
		*v = *RecordValue(r)
	case bsontype.Array:
		values, err := raw.Array().Values()
		if err != nil {
			return err
		}
		r := make(map[string]Value, len(values))
		for i, e := range values {
			var ev Value
			if err := ev.UnmarshalBSONValue(e.Type, e.Value); err != nil {
				return err
			}
			r[fmt.Sprint(i)] = ev
		}
		*v = *RecordValue(r)
	default:
		*v = *StringValue(raw.String())
	}

	return nil
}

// UnmarshalJSON keeps an explicit null side distinct from an absent one.
func (c *Change) UnmarshalJSON(data []byte) error {
	var raw struct {
		Field    string          `json:"field"`
		OldValue json.RawMessage `json:"oldValue"`
		NewValue json.RawMessage `json:"newValue"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = Change{Field: raw.Field}

	for _, side := range []struct {
		raw json.RawMessage
		dst **Value
	}{{raw.OldValue, &c.OldValue}, {raw.NewValue, &c.NewValue}} {
		if len(side.raw) == 0 {
			continue
		}
		v := new(Value)
		if err := v.UnmarshalJSON(side.raw); err != nil {
			return err
		}
		*side.dst = v
	}

	return nil
}

// UnmarshalBSON keeps a stored null side distinct from an absent one.
func (c *Change) UnmarshalBSON(data []byte) error {
	elems, err := bson.Raw(data).Elements()
	if err != nil {
		return err
	}

	*c = Change{}

	for _, e := range elems {
		rv := e.Value()

		switch e.Key() {
		case "field":
			c.Field, _ = rv.StringValueOK()
		case "oldValue":
			c.OldValue = new(Value)
			if err := c.OldValue.UnmarshalBSONValue(rv.Type, rv.Value); err != nil {
				return err
			}
		case "newValue":
			c.NewValue = new(Value)
			if err := c.NewValue.UnmarshalBSONValue(rv.Type, rv.Value); err != nil {
				return err
			}
		}
	}

	return nil
}
