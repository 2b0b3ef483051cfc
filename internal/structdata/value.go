package structdata

import (
	"encoding/json"
	"strconv"
)

const (
	nullKindNameConstant    = "null"
	booleanKindNameConstant = "boolean"
	numberKindNameConstant  = "number"
	stringKindNameConstant  = "string"
	arrayKindNameConstant   = "array"
	objectKindNameConstant  = "object"
	invalidKindNameConstant = "invalid"
)

// Kind identifies the variant stored in a Value.
type Kind int

// Value kinds covering every JSON-compatible shape.
const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNameMapping = map[Kind]string{
	KindNull:    nullKindNameConstant,
	KindBoolean: booleanKindNameConstant,
	KindNumber:  numberKindNameConstant,
	KindString:  stringKindNameConstant,
	KindArray:   arrayKindNameConstant,
	KindObject:  objectKindNameConstant,
}

// String names the kind for diagnostics.
func (kind Kind) String() string {
	kindName, kindKnown := kindNameMapping[kind]
	if !kindKnown {
		return invalidKindNameConstant
	}
	return kindName
}

// Value is a tagged JSON-compatible tree node. The zero value is null.
type Value struct {
	valueKind    Kind
	booleanValue bool
	numberValue  json.Number
	stringValue  string
	arrayItems   []Value
	objectKeys   []string
	objectFields map[string]Value
}

// Null constructs the null value.
func Null() Value {
	return Value{valueKind: KindNull}
}

// Boolean constructs a boolean value.
func Boolean(booleanValue bool) Value {
	return Value{valueKind: KindBoolean, booleanValue: booleanValue}
}

// Number constructs a numeric value from its JSON literal.
func Number(literal json.Number) Value {
	return Value{valueKind: KindNumber, numberValue: literal}
}

// Integer constructs a numeric value from an integer.
func Integer(integerValue int64) Value {
	return Number(json.Number(strconv.FormatInt(integerValue, 10)))
}

// String constructs a string value.
func String(stringValue string) Value {
	return Value{valueKind: KindString, stringValue: stringValue}
}

// Array constructs an array value from the provided items.
func Array(items ...Value) Value {
	duplicatedItems := make([]Value, len(items))
	copy(duplicatedItems, items)
	return Value{valueKind: KindArray, arrayItems: duplicatedItems}
}

// Object constructs an empty object value ready for SetField calls.
func Object() Value {
	return Value{valueKind: KindObject, objectFields: map[string]Value{}}
}

// Kind reports the variant stored in the value.
func (value Value) Kind() Kind {
	return value.valueKind
}

// BooleanValue returns the stored boolean; false for other kinds.
func (value Value) BooleanValue() bool {
	return value.booleanValue
}

// NumberValue returns the stored numeric literal; empty for other kinds.
func (value Value) NumberValue() json.Number {
	return value.numberValue
}

// StringValue returns the stored string; empty for other kinds.
func (value Value) StringValue() string {
	return value.stringValue
}

// Items returns the array items in order; nil for other kinds.
func (value Value) Items() []Value {
	duplicatedItems := make([]Value, len(value.arrayItems))
	copy(duplicatedItems, value.arrayItems)
	return duplicatedItems
}

// Keys returns object keys in their stored order; nil for other kinds.
func (value Value) Keys() []string {
	duplicatedKeys := make([]string, len(value.objectKeys))
	copy(duplicatedKeys, value.objectKeys)
	return duplicatedKeys
}

// Field looks up an object field by key.
func (value Value) Field(fieldKey string) (Value, bool) {
	if value.valueKind != KindObject {
		return Value{}, false
	}
	fieldValue, fieldExists := value.objectFields[fieldKey]
	return fieldValue, fieldExists
}

// SetField stores an object field, preserving first-insertion key order.
func (value *Value) SetField(fieldKey string, fieldValue Value) {
	if value.valueKind != KindObject {
		return
	}
	if value.objectFields == nil {
		value.objectFields = map[string]Value{}
	}
	if _, fieldExists := value.objectFields[fieldKey]; !fieldExists {
		value.objectKeys = append(value.objectKeys, fieldKey)
	}
	value.objectFields[fieldKey] = fieldValue
}

// Append adds an item to an array value.
func (value *Value) Append(item Value) {
	if value.valueKind != KindArray {
		return
	}
	value.arrayItems = append(value.arrayItems, item)
}

// Length reports the number of array items or object fields.
func (value Value) Length() int {
	switch value.valueKind {
	case KindArray:
		return len(value.arrayItems)
	case KindObject:
		return len(value.objectKeys)
	default:
		return 0
	}
}

// Equal reports structural equality, comparing object fields regardless of
// key order and numbers by numeric value.
func (value Value) Equal(other Value) bool {
	if value.valueKind != other.valueKind {
		return false
	}
	switch value.valueKind {
	case KindNull:
		return true
	case KindBoolean:
		return value.booleanValue == other.booleanValue
	case KindNumber:
		return numbersEqual(value.numberValue, other.numberValue)
	case KindString:
		return value.stringValue == other.stringValue
	case KindArray:
		if len(value.arrayItems) != len(other.arrayItems) {
			return false
		}
		for itemIndex := range value.arrayItems {
			if !value.arrayItems[itemIndex].Equal(other.arrayItems[itemIndex]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(value.objectKeys) != len(other.objectKeys) {
			return false
		}
		for _, fieldKey := range value.objectKeys {
			otherField, otherFieldExists := other.objectFields[fieldKey]
			if !otherFieldExists {
				return false
			}
			if !value.objectFields[fieldKey].Equal(otherField) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func numbersEqual(first json.Number, second json.Number) bool {
	if first.String() == second.String() {
		return true
	}
	firstFloat, firstError := first.Float64()
	secondFloat, secondError := second.Float64()
	if firstError != nil || secondError != nil {
		return false
	}
	return firstFloat == secondFloat
}
