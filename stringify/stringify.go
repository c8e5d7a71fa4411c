// Package stringify renders values in a human-readable, indented form that is used by the String methods of the
// data structures in this module.
package stringify

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kr/text"
)

// IndentationSize is the amount of spaces used to indent nested values.
const IndentationSize = 2

// Interface returns a human-readable version of the given value.
func Interface(value any) string {
	switch typeCastedValue := value.(type) {
	case nil:
		return "<nil>"
	case string:
		return strconv.Quote(typeCastedValue)
	case []byte:
		return fmt.Sprintf("%X", typeCastedValue)
	case fmt.Stringer:
		return typeCastedValue.String()
	case error:
		return typeCastedValue.Error()
	}

	if reflectedValue := reflect.ValueOf(value); reflectedValue.Kind() == reflect.Slice || reflectedValue.Kind() == reflect.Array {
		return sliceReflect(reflectedValue)
	}

	return fmt.Sprint(value)
}

func sliceReflect(value reflect.Value) (result string) {
	result = "["

	newLineVersion := false
	for i := 0; i < value.Len(); i++ {
		valueString := Interface(value.Index(i).Interface())
		if strings.Contains(valueString, "\n") {
			if !newLineVersion {
				result += "\n"

				newLineVersion = true
			}
			result += indent(valueString + ",\n")
		} else {
			result += valueString + ", "
		}
	}

	if !newLineVersion && len(result) >= 3 {
		result = result[:len(result)-2]
	}

	return result + "]"
}

func indent(value string) string {
	return text.Indent(value, strings.Repeat(" ", IndentationSize))
}
