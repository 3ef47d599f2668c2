package span

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeHook returns a mapstructure hook that parses string values in
// duration notation into time.Duration and Duration fields. Pass it to
// viper.Unmarshal through viper.DecodeHook.
func DecodeHook() mapstructure.DecodeHookFuncType {
	stdDurationType := reflect.TypeOf(time.Duration(0))
	spanDurationType := reflect.TypeOf(Duration(0))

	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		if to != stdDurationType && to != spanDurationType {
			return data, nil
		}

		s := reflect.ValueOf(data).String()
		d, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		if to == spanDurationType {
			return Duration(d), nil
		}
		return d, nil
	}
}
