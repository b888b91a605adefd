package contracts

import "errors"

// Error taxonomy shared by the growth, window and dataset packages.
// ⭐ SSOT: 모든 계산 에러는 여기서만 정의 (errors.Is 로 비교)
var (
	// ErrEmptyInput is returned when a mean, growth, dispersion or aggregation
	// operation receives a zero-length sequence.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidWindowSize is returned when a window size < 1 is requested.
	ErrInvalidWindowSize = errors.New("invalid window size")

	// ErrInvalidClampBounds is returned when the clamp floor is above the ceiling.
	ErrInvalidClampBounds = errors.New("invalid clamp bounds")

	// ErrNegativeGrowth is returned when the compounded growth factor is negative
	// (a single-year loss beyond -100%), which has no real n-th root.
	ErrNegativeGrowth = errors.New("negative cumulative growth factor")

	// ErrUnorderedSeries is returned when years are not strictly ascending.
	ErrUnorderedSeries = errors.New("series years must be strictly ascending")
)
