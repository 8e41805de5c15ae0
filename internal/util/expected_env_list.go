package util

import (
	"fmt"
	"reflect"
	"strings"
)

// ----------------------------------------------------- FormatExpectedEnvList -------------------------------------- //

// FormatExpectedEnvList formats the environment variables read into T.
// It uses reflection to read the `env` and `envDefault` tags of the struct fields.
// Required variables are listed first, then optional ones with their default if any.
func FormatExpectedEnvList[T any]() string {
	type envVar struct {
		name, def string
	}

	var required, optional []envVar
	width := 0

	rt := reflect.TypeFor[T]()
	for i := range rt.NumField() {
		field := rt.Field(i)
		val, ok := field.Tag.Lookup("env")
		if !ok {
			continue
		}

		parts := strings.Split(val, ",")
		v := envVar{name: parts[0], def: field.Tag.Get("envDefault")}

		isRequired := false
		for _, opt := range parts[1:] {
			if opt == "required" {
				isRequired = true
			}
		}

		if isRequired {
			required = append(required, v)
		} else {
			optional = append(optional, v)
		}

		width = max(width, len(v.name))
	}

	var b strings.Builder
	for _, v := range required {
		fmt.Fprintf(&b, "  %-*s [Required]\n", width, v.name)
	}

	for _, v := range optional {
		if v.def == "" {
			fmt.Fprintf(&b, "  %-*s [Optional]\n", width, v.name)
			continue
		}
		fmt.Fprintf(&b, "  %-*s [Optional] (default: %s)\n", width, v.name, v.def)
	}

	return b.String()
}
