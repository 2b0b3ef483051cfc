package structdata_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/utilkit/internal/structdata"
)

func TestDecodePreservesObjectKeyOrder(testInstance *testing.T) {
	documentText := `{"zulu": 1, "alpha": 2, "mike": {"nested": true}}`

	decodedValue, decodeError := structdata.Decode([]byte(documentText))
	require.NoError(testInstance, decodeError)
	require.Equal(testInstance, structdata.KindObject, decodedValue.Kind())
	require.Equal(testInstance, []string{"zulu", "alpha", "mike"}, decodedValue.Keys())

	nestedValue, nestedExists := decodedValue.Field("mike")
	require.True(testInstance, nestedExists)
	require.Equal(testInstance, []string{"nested"}, nestedValue.Keys())
}

func TestDecodeRejectsMalformedDocuments(testInstance *testing.T) {
	testCases := []struct {
		name         string
		documentText string
	}{
		{name: "TruncatedObject", documentText: `{"name": "Helium`},
		{name: "TrailingContent", documentText: `{"name": "Helium"} extra`},
		{name: "EmptyDocument", documentText: ``},
		{name: "BareComma", documentText: `,`},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			_, decodeError := structdata.Decode([]byte(testCase.documentText))
			require.Error(subtest, decodeError)
		})
	}
}

func TestEncodeUsesFourSpaceIndentation(testInstance *testing.T) {
	documentValue := structdata.Object()
	documentValue.SetField("name", structdata.String("Helium V2"))
	documentValue.SetField("status", structdata.String("Active"))
	documentValue.SetField("ports", structdata.Array(structdata.Integer(80), structdata.Integer(443)))

	encodedBytes, encodeError := structdata.Encode(documentValue)
	require.NoError(testInstance, encodeError)

	expectedDocument := "{\n" +
		"    \"name\": \"Helium V2\",\n" +
		"    \"status\": \"Active\",\n" +
		"    \"ports\": [\n" +
		"        80,\n" +
		"        443\n" +
		"    ]\n" +
		"}"
	require.Equal(testInstance, expectedDocument, string(encodedBytes))
}

func TestEncodeScalarAndEmptyContainers(testInstance *testing.T) {
	testCases := []struct {
		name           string
		value          structdata.Value
		expectedOutput string
	}{
		{name: "Null", value: structdata.Null(), expectedOutput: "null"},
		{name: "BooleanTrue", value: structdata.Boolean(true), expectedOutput: "true"},
		{name: "Number", value: structdata.Number(json.Number("3.5")), expectedOutput: "3.5"},
		{name: "EscapedString", value: structdata.String("line\nbreak"), expectedOutput: `"line\nbreak"`},
		{name: "EmptyArray", value: structdata.Array(), expectedOutput: "[]"},
		{name: "EmptyObject", value: structdata.Object(), expectedOutput: "{}"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			encodedBytes, encodeError := structdata.Encode(testCase.value)
			require.NoError(subtest, encodeError)
			require.Equal(subtest, testCase.expectedOutput, string(encodedBytes))
		})
	}
}

func TestEncodeDecodeRoundTrip(testInstance *testing.T) {
	rootValue := structdata.Object()
	rootValue.SetField("title", structdata.String("inventory"))
	rootValue.SetField("count", structdata.Integer(42))
	rootValue.SetField("ratio", structdata.Number(json.Number("0.25")))
	rootValue.SetField("enabled", structdata.Boolean(false))
	rootValue.SetField("missing", structdata.Null())
	rootValue.SetField("tags", structdata.Array(structdata.String("a"), structdata.String("b")))

	encodedBytes, encodeError := structdata.Encode(rootValue)
	require.NoError(testInstance, encodeError)

	decodedValue, decodeError := structdata.Decode(encodedBytes)
	require.NoError(testInstance, decodeError)
	require.True(testInstance, rootValue.Equal(decodedValue))
	require.Equal(testInstance, rootValue.Keys(), decodedValue.Keys())
}

func TestValueEqualComparesNumbersByValue(testInstance *testing.T) {
	require.True(testInstance, structdata.Number(json.Number("1")).Equal(structdata.Number(json.Number("1.0"))))
	require.False(testInstance, structdata.Number(json.Number("1")).Equal(structdata.Number(json.Number("2"))))
	require.False(testInstance, structdata.Null().Equal(structdata.Boolean(false)))
}
