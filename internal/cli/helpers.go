package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	CalculationKind = "calculation"
	RuleKind        = "rule"
)

var (
	pluralKinds = map[string]string{
		CalculationKind: "calculations",
		RuleKind:        "rules",
	}
)

func parseAndValidateKindId(arg string) (string, *uuid.UUID, error) {
	kind, idStr, _ := strings.Cut(arg, "/")
	kind = singular(kind)
	if _, ok := pluralKinds[kind]; !ok {
		return "", nil, fmt.Errorf("invalid resource kind: %s", kind)
	}
	if idStr == "" {
		return kind, nil, nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return "", nil, fmt.Errorf("invalid resource id: %s", idStr)
	}
	return kind, &id, nil
}

func singular(kind string) string {
	for singular, plural := range pluralKinds {
		if kind == plural {
			return singular
		}
	}
	return kind
}

func plural(kind string) string {
	return pluralKinds[kind]
}

// parseFloatList parses a comma separated list of numbers. An empty string is
// a valid empty list.
func parseFloatList(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid numeric list %q: %w", s, err)
		}
		values = append(values, value)
	}

	return values, nil
}
