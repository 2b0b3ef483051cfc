package dates

import (
	"fmt"
	"strings"
)

const (
	directiveMarkerConstant              = '%'
	danglingDirectiveMessageConstant     = "format ends with a bare %% directive marker"
	unsupportedDirectiveTemplateConstant = "unsupported format directive %%%c"
)

// Directive-to-reference-layout translations. Literal characters between
// directives are carried through unchanged, so formats should separate
// directives with punctuation rather than digits or layout words.
var directiveLayoutMapping = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'M': "04",
	'S': "05",
	'b': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'p': "PM",
	'j': "002",
}

// TranslateFormat converts a strptime-style directive format into a Go
// reference layout.
func TranslateFormat(directiveFormat string) (string, error) {
	var layoutBuilder strings.Builder

	for characterIndex := 0; characterIndex < len(directiveFormat); characterIndex++ {
		currentCharacter := directiveFormat[characterIndex]
		if currentCharacter != directiveMarkerConstant {
			layoutBuilder.WriteByte(currentCharacter)
			continue
		}

		characterIndex++
		if characterIndex >= len(directiveFormat) {
			return "", fmt.Errorf(danglingDirectiveMessageConstant)
		}

		directiveCharacter := directiveFormat[characterIndex]
		if directiveCharacter == directiveMarkerConstant {
			layoutBuilder.WriteByte(directiveMarkerConstant)
			continue
		}

		layoutFragment, directiveSupported := directiveLayoutMapping[directiveCharacter]
		if !directiveSupported {
			return "", fmt.Errorf(unsupportedDirectiveTemplateConstant, directiveCharacter)
		}
		layoutBuilder.WriteString(layoutFragment)
	}

	return layoutBuilder.String(), nil
}
