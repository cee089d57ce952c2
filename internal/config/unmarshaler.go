package config

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/termtools/termlint/pkg/diag"
)

// CustomDecoderConfig returns a mapstructure decoder config with a hook
// for decoding severity strings.
func CustomDecoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToSeverityHookFunc(),
		),
		WeaklyTypedInput: true,
		Result:           result,
	}
}

// stringToSeverityHookFunc converts strings to diag.Severity. Unrecognized
// strings deliberately fall back to warning instead of failing the load.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToSeverityHookFunc() mapstructure.DecodeHookFunc {
	return func(
		_ reflect.Type,
		t reflect.Type,
		data any,
	) (any, error) {
		if t != reflect.TypeFor[diag.Severity]() {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return diag.ParseSeverity(v), nil

		case int:
			return diag.Severity(v), nil

		case int64:
			return diag.Severity(v), nil

		default:
			return data, nil
		}
	}
}
