package users

import (
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Record is one user entry as returned by the API. The underlying value is
// kept exactly as decoded, including fields this package never reads.
type Record struct {
	v cty.Value
}

// NewRecord wraps an already decoded value.
func NewRecord(v cty.Value) Record {
	return Record{v: v}
}

// Value returns the decoded value behind the record.
func (r Record) Value() cty.Value {
	return r.v
}

// Field returns the top-level attribute name if it is present and a string.
func (r Record) Field(name string) (string, bool) {
	return stringAttr(r.v, name)
}

// City returns address.city if both levels are present and city is a string.
func (r Record) City() (string, bool) {
	addr, ok := attr(r.v, "address")
	if !ok {
		return "", false
	}
	return stringAttr(addr, "city")
}

// ParseRecords decodes a response body into records. The body must be a JSON
// array with at least one element.
func ParseRecords(body []byte) ([]Record, error) {
	ty, err := ctyjson.ImpliedType(body)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if !ty.IsTupleType() {
		return nil, &SchemaError{Kind: ty.FriendlyName()}
	}
	val, err := ctyjson.Unmarshal(body, ty)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if val.LengthInt() == 0 {
		return nil, &SchemaError{Kind: "empty array"}
	}

	elems := val.AsValueSlice()
	records := make([]Record, 0, len(elems))
	for _, elem := range elems {
		records = append(records, NewRecord(elem))
	}
	return records, nil
}

func attr(v cty.Value, name string) (cty.Value, bool) {
	if v.IsNull() || !v.IsKnown() {
		return cty.NilVal, false
	}
	ty := v.Type()
	switch {
	case ty.IsObjectType():
		if !ty.HasAttribute(name) {
			return cty.NilVal, false
		}
		return v.GetAttr(name), true
	case ty.IsMapType():
		if !v.HasIndex(cty.StringVal(name)).True() {
			return cty.NilVal, false
		}
		return v.Index(cty.StringVal(name)), true
	default:
		return cty.NilVal, false
	}
}

func stringAttr(v cty.Value, name string) (string, bool) {
	field, ok := attr(v, name)
	if !ok || field.IsNull() || !field.IsKnown() || field.Type() != cty.String {
		return "", false
	}
	return field.AsString(), true
}
