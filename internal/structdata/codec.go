package structdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	indentUnitConstant                  = "    "
	unexpectedTokenTemplateConstant     = "unexpected JSON token %v"
	unexpectedEndMessageConstant        = "unexpected end of JSON document"
	trailingContentMessageConstant      = "unexpected content after JSON document"
	objectKeyTypeTemplateConstant       = "object key is %T, expected string"
	openBraceConstant                   = "{"
	closeBraceConstant                  = "}"
	openBracketConstant                 = "["
	closeBracketConstant                = "]"
	nullLiteralConstant                 = "null"
	trueLiteralConstant                 = "true"
	falseLiteralConstant                = "false"
	keyValueSeparatorConstant           = ": "
	itemSeparatorConstant               = ","
)

// Decode parses UTF-8 JSON text into a Value, preserving object key order.
func Decode(documentBytes []byte) (Value, error) {
	decoder := json.NewDecoder(bytes.NewReader(documentBytes))
	decoder.UseNumber()

	decodedValue, decodeError := decodeNext(decoder)
	if decodeError != nil {
		return Value{}, decodeError
	}

	if _, trailingError := decoder.Token(); trailingError != io.EOF {
		return Value{}, fmt.Errorf(trailingContentMessageConstant)
	}

	return decodedValue, nil
}

func decodeNext(decoder *json.Decoder) (Value, error) {
	token, tokenError := decoder.Token()
	if tokenError == io.EOF {
		return Value{}, fmt.Errorf(unexpectedEndMessageConstant)
	}
	if tokenError != nil {
		return Value{}, tokenError
	}

	switch typedToken := token.(type) {
	case json.Delim:
		switch typedToken.String() {
		case openBraceConstant:
			return decodeObject(decoder)
		case openBracketConstant:
			return decodeArray(decoder)
		default:
			return Value{}, fmt.Errorf(unexpectedTokenTemplateConstant, typedToken)
		}
	case bool:
		return Boolean(typedToken), nil
	case json.Number:
		return Number(typedToken), nil
	case string:
		return String(typedToken), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf(unexpectedTokenTemplateConstant, token)
	}
}

func decodeObject(decoder *json.Decoder) (Value, error) {
	objectValue := Object()
	for decoder.More() {
		keyToken, keyError := decoder.Token()
		if keyError != nil {
			return Value{}, keyError
		}
		fieldKey, keyIsString := keyToken.(string)
		if !keyIsString {
			return Value{}, fmt.Errorf(objectKeyTypeTemplateConstant, keyToken)
		}

		fieldValue, fieldError := decodeNext(decoder)
		if fieldError != nil {
			return Value{}, fieldError
		}
		objectValue.SetField(fieldKey, fieldValue)
	}
	if _, closingError := decoder.Token(); closingError != nil {
		return Value{}, closingError
	}
	return objectValue, nil
}

func decodeArray(decoder *json.Decoder) (Value, error) {
	arrayValue := Array()
	for decoder.More() {
		itemValue, itemError := decodeNext(decoder)
		if itemError != nil {
			return Value{}, itemError
		}
		arrayValue.Append(itemValue)
	}
	if _, closingError := decoder.Token(); closingError != nil {
		return Value{}, closingError
	}
	return arrayValue, nil
}

// Encode renders the value as UTF-8 JSON text indented with four spaces.
func Encode(value Value) ([]byte, error) {
	var documentBuilder strings.Builder
	if encodeError := encodeValue(&documentBuilder, value, 0); encodeError != nil {
		return nil, encodeError
	}
	return []byte(documentBuilder.String()), nil
}

func encodeValue(documentBuilder *strings.Builder, value Value, indentDepth int) error {
	switch value.Kind() {
	case KindNull:
		documentBuilder.WriteString(nullLiteralConstant)
	case KindBoolean:
		if value.BooleanValue() {
			documentBuilder.WriteString(trueLiteralConstant)
		} else {
			documentBuilder.WriteString(falseLiteralConstant)
		}
	case KindNumber:
		documentBuilder.WriteString(value.NumberValue().String())
	case KindString:
		return encodeString(documentBuilder, value.StringValue())
	case KindArray:
		return encodeArray(documentBuilder, value, indentDepth)
	case KindObject:
		return encodeObject(documentBuilder, value, indentDepth)
	}
	return nil
}

func encodeString(documentBuilder *strings.Builder, stringValue string) error {
	escapedBytes, escapeError := json.Marshal(stringValue)
	if escapeError != nil {
		return escapeError
	}
	documentBuilder.Write(escapedBytes)
	return nil
}

func encodeArray(documentBuilder *strings.Builder, value Value, indentDepth int) error {
	items := value.Items()
	if len(items) == 0 {
		documentBuilder.WriteString(openBracketConstant + closeBracketConstant)
		return nil
	}

	documentBuilder.WriteString(openBracketConstant + "\n")
	for itemIndex, item := range items {
		documentBuilder.WriteString(strings.Repeat(indentUnitConstant, indentDepth+1))
		if itemError := encodeValue(documentBuilder, item, indentDepth+1); itemError != nil {
			return itemError
		}
		if itemIndex < len(items)-1 {
			documentBuilder.WriteString(itemSeparatorConstant)
		}
		documentBuilder.WriteString("\n")
	}
	documentBuilder.WriteString(strings.Repeat(indentUnitConstant, indentDepth))
	documentBuilder.WriteString(closeBracketConstant)
	return nil
}

func encodeObject(documentBuilder *strings.Builder, value Value, indentDepth int) error {
	fieldKeys := value.Keys()
	if len(fieldKeys) == 0 {
		documentBuilder.WriteString(openBraceConstant + closeBraceConstant)
		return nil
	}

	documentBuilder.WriteString(openBraceConstant + "\n")
	for keyIndex, fieldKey := range fieldKeys {
		documentBuilder.WriteString(strings.Repeat(indentUnitConstant, indentDepth+1))
		if keyError := encodeString(documentBuilder, fieldKey); keyError != nil {
			return keyError
		}
		documentBuilder.WriteString(keyValueSeparatorConstant)

		fieldValue, _ := value.Field(fieldKey)
		if fieldError := encodeValue(documentBuilder, fieldValue, indentDepth+1); fieldError != nil {
			return fieldError
		}
		if keyIndex < len(fieldKeys)-1 {
			documentBuilder.WriteString(itemSeparatorConstant)
		}
		documentBuilder.WriteString("\n")
	}
	documentBuilder.WriteString(strings.Repeat(indentUnitConstant, indentDepth))
	documentBuilder.WriteString(closeBraceConstant)
	return nil
}
