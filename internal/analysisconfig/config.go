package analysisconfig

import (
	"github.com/wonny/cagrlab/internal/contracts"
	"github.com/wonny/cagrlab/internal/window"
)

// Config는 벤치마크 vs 캡 전략 비교 분석의 전체 설정
type Config struct {
	Meta      Meta      `yaml:"meta" toml:"meta" json:"meta"`
	Benchmark Benchmark `yaml:"benchmark" toml:"benchmark" json:"benchmark"`
	Strategy  Strategy  `yaml:"strategy" toml:"strategy" json:"strategy"`
	Horizons  Horizons  `yaml:"horizons" toml:"horizons" json:"horizons"`
}

// Meta 메타 정보
type Meta struct {
	AnalysisID string `yaml:"analysis_id" toml:"analysis_id" json:"analysis_id" validate:"required"`
	Version    string `yaml:"version" toml:"version" json:"version"`
}

// Benchmark is the raw index series
type Benchmark struct {
	Label string `yaml:"label" toml:"label" json:"label" validate:"required"`
}

// Strategy is the capped-return product simulated over the benchmark
type Strategy struct {
	Label string `yaml:"label" toml:"label" json:"label" validate:"required"`
	Caps  Caps   `yaml:"caps" toml:"caps" json:"caps"`
}

// Caps 연간 수익률 floor/cap (%)
type Caps struct {
	Lower float64 `yaml:"lower" toml:"lower" json:"lower"`
	Upper float64 `yaml:"upper" toml:"upper" json:"upper" validate:"gtefield=Lower"`
}

// Horizons 롤링 윈도우 기간 (년)
type Horizons struct {
	Years   []int  `yaml:"years" toml:"years" json:"years" validate:"required,min=1,unique,dive,min=1"`
	Extrema string `yaml:"extrema" toml:"extrema" json:"extrema" validate:"omitempty,oneof=legacy full"`
}

// Default is the classic comparison: S&P 500 vs a 0%/16% IUL,
// horizons 10..30 years, legacy extrema selection
func Default() *Config {
	return &Config{
		Meta: Meta{
			AnalysisID: "sp500_vs_iul",
			Version:    "1",
		},
		Benchmark: Benchmark{Label: "S&P 500"},
		Strategy: Strategy{
			Label: "IUL",
			Caps:  Caps{Lower: 0.0, Upper: 16.0},
		},
		Horizons: Horizons{
			Years:   []int{10, 15, 20, 25, 30},
			Extrema: string(window.ExtremaLegacy),
		},
	}
}

// Bounds returns validated clamp bounds
func (c *Config) Bounds() (contracts.ClampBounds, error) {
	return contracts.NewClampBounds(c.Strategy.Caps.Lower, c.Strategy.Caps.Upper)
}

// ExtremaMode returns the representative-window selection mode
func (c *Config) ExtremaMode() (window.ExtremaMode, error) {
	return window.ParseExtremaMode(c.Horizons.Extrema)
}
