package analysisconfig

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationError 검증 실패 (프로그램 중단)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Warning 권장 위반 (경고만)
type Warning struct {
	Code    string
	Message string
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// 에러 필드명을 yaml 키로 표시
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks all required constraints
// 실패 시 ValidationError 반환 (프로그램 중단)
func Validate(cfg *Config) error {
	if err := structValidator().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return toValidationError(verrs[0])
		}
		return err
	}

	// === Strategy ===
	if _, err := cfg.Bounds(); err != nil {
		return ValidationError{"strategy.caps", err.Error()}
	}

	// === Horizons ===
	if _, err := cfg.ExtremaMode(); err != nil {
		return ValidationError{"horizons.extrema", err.Error()}
	}

	return nil
}

func toValidationError(fe validator.FieldError) ValidationError {
	// "Config.strategy.caps.upper" → "strategy.caps.upper"
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	var msg string
	switch fe.Tag() {
	case "required":
		msg = "required"
	case "gtefield":
		msg = fmt.Sprintf("must be >= %s", strings.ToLower(fe.Param()))
	case "min":
		msg = fmt.Sprintf("must be >= %s", fe.Param())
	case "unique":
		msg = "must not contain duplicates"
	case "oneof":
		msg = fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		msg = fmt.Sprintf("failed %q check", fe.Tag())
	}

	return ValidationError{Field: field, Message: msg}
}

// Warn checks recommended constraints (non-fatal).
// seriesLen is the number of years in the loaded series (0 = unknown).
func Warn(cfg *Config, seriesLen int) []Warning {
	var warnings []Warning

	for _, years := range cfg.Horizons.Years {
		if seriesLen > 0 && years > seriesLen {
			warnings = append(warnings, Warning{
				Code:    "HORIZON_EXCEEDS_SERIES",
				Message: fmt.Sprintf("%d-year horizon is longer than the %d-year series and will be skipped", years, seriesLen),
			})
		}
	}

	if cfg.Strategy.Caps.Lower > 0 {
		warnings = append(warnings, Warning{
			Code:    "POSITIVE_FLOOR",
			Message: fmt.Sprintf("floor %.2f%% > 0: guaranteed minimum credit is unusual", cfg.Strategy.Caps.Lower),
		})
	}

	if cfg.Strategy.Caps.Upper > 100 {
		warnings = append(warnings, Warning{
			Code:    "CAP_ABOVE_100",
			Message: fmt.Sprintf("cap %.2f%% > 100%%: the cap rarely binds", cfg.Strategy.Caps.Upper),
		})
	}

	if cfg.Horizons.Extrema == "" || cfg.Horizons.Extrema == "legacy" {
		warnings = append(warnings, Warning{
			Code:    "LEGACY_EXTREMA",
			Message: "min/max windows exclude the most recent window; set horizons.extrema: full to include it",
		})
	}

	return warnings
}
