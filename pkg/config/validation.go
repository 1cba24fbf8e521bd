package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate checks the configuration against the struct validate tags and
// returns one error naming every failing field.
func Validate(cfg *Config) error {
	validate := validator.New()

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var problems []string
	for _, ve := range verrs {
		problems = append(problems, fmt.Sprintf("%s: failed %q constraint", ve.Namespace(), ve.Tag()))
	}

	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}
