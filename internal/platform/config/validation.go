package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the package-level validator instance.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateStore, StoreConfig{})

	return v
}

// validateStore checks that the URI scheme matches the selected driver.
func validateStore(sl validator.StructLevel) {
	store, ok := sl.Current().Interface().(StoreConfig)
	if !ok || store.URI == "" {
		return
	}

	if store.Driver == "mongo" &&
		!strings.HasPrefix(store.URI, "mongodb://") &&
		!strings.HasPrefix(store.URI, "mongodb+srv://") {
		sl.ReportError(store.URI, "URI", "URI", "mongouri", "")
	}
}

// Validate validates the configuration and returns an error if invalid.
// Validation fails fast - the service should not start with invalid config.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// clientSections are the parts of Config the terminal client reads.
type clientSections struct {
	Log    LogConfig    `validate:"required"`
	Client ClientConfig `validate:"required"`
}

// ValidateClient validates only the sections the terminal client uses, so the
// client runs without store settings.
func (c *Config) ValidateClient() error {
	if err := validate.Struct(clientSections{Log: c.Log, Client: c.Client}); err != nil {
		return formatValidationErrors(err)
	}

	return nil
}

// formatValidationErrors converts validator errors to a readable format.
func formatValidationErrors(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	errs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, formatFieldError(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
}

// formatFieldError formats a single field validation error.
func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "mongouri":
		return fmt.Sprintf("%s must start with mongodb:// or mongodb+srv://", field)
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// formatFieldPath converts "Config.Server.Port" to "server.port".
func formatFieldPath(namespace string) string {
	// Remove the root struct name (Config.)
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	// Convert to lowercase
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}

	return strings.Join(parts, ".")
}
