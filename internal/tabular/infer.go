package tabular

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/recsys-data/pkg/types"
)

var (
	intPattern   = regexp.MustCompile(`^-?\d+$`)
	floatPattern = regexp.MustCompile(`^[-+]?((\d*\.\d+)([eE][-+]?\d+)?|inf|NaN|(\d+)[eE][-+]?\d+|\d+\.)$`)
)

// inferType picks the narrowest type that every non-null cell parses as.
// Integers that overflow int64 widen the column to float64. A column with
// no non-null cells is string.
func inferType(cells []string) types.ColumnType {
	isInt, isFloat, isBool := true, true, true
	seen := false

	for _, s := range cells {
		if s == "" {
			continue
		}
		seen = true

		if isInt && !looksInt(s) {
			isInt = false
		}
		if isFloat && !intPattern.MatchString(s) && !floatPattern.MatchString(s) {
			isFloat = false
		}
		if isBool && !strings.EqualFold(s, "true") && !strings.EqualFold(s, "false") {
			isBool = false
		}
		if !isInt && !isFloat && !isBool {
			return types.TypeString
		}
	}

	switch {
	case !seen:
		return types.TypeString
	case isInt:
		return types.TypeInt64
	case isFloat:
		return types.TypeFloat64
	case isBool:
		return types.TypeBool
	}
	return types.TypeString
}

func looksInt(s string) bool {
	if !intPattern.MatchString(s) {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}
