package config

import (
	"fmt"
	"reflect"

	"github.com/jesseduffield/lazyls/pkg/utils"
)

// Validate validates the user config
func (config *UserConfig) Validate() error {
	if err := validateTheme(config.Theme); err != nil {
		return err
	}

	if _, err := NewListingConfig(config.Listing); err != nil {
		return err
	}

	if _, err := compileGlobs(config.Listing.Ignore); err != nil {
		return err
	}

	return nil
}

// validateTheme checks every color name of every theme element
func validateTheme(theme ThemeConfig) error {
	value := reflect.ValueOf(theme)
	for _, field := range reflect.VisibleFields(reflect.TypeOf(theme)) {
		colors, ok := value.FieldByName(field.Name).Interface().([]string)
		if !ok {
			return fmt.Errorf("Unexpected type for theme property '%s'", field.Name)
		}
		for _, name := range colors {
			if !utils.IsValidColor(name) {
				return fmt.Errorf("Unrecognized color '%s' for theme property '%s'. For permitted values see https://github.com/jesseduffield/lazyls/blob/master/docs/Config.md",
					name, field.Name)
			}
		}
	}
	return nil
}
