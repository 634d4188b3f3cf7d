package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
)

// errmsg renders a store failure the way the dashboards display it.
func errmsg(err error) string {
	switch err := err.(type) {
	case validator.ValidationErrors:
		parts := make([]string, 0, len(err))
		for _, vErr := range err {
			parts = append(parts, fmt.Sprintf("%s: %s", vErr.Field(), vErr.Translate(core.Translator)))
		}
		return strings.Join(parts, "; ")
	case *core.ValidationError:
		if len(err.Fields) > 0 {
			parts := make([]string, 0, len(err.Fields))
			for _, fErr := range err.Fields {
				parts = append(parts, fmt.Sprintf("%s: %s", fErr.Field, fErr.Error))
			}
			return strings.Join(parts, "; ")
		}
		return err.Error()
	}
	return err.Error()
}
