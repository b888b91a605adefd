// Package growth holds the pure return arithmetic: conversion between
// percentage returns and growth factors, arithmetic/geometric means,
// population dispersion and the floor/ceiling clamp.
// ⭐ SSOT: 수익률 계산 로직은 여기서만
package growth

// ToGrowthFactor converts a percentage return to a multiplier (+10% → 1.10)
func ToGrowthFactor(returnPct float64) float64 {
	return 1.0 + returnPct/100.0
}

// ToReturnPct converts a multiplier back to a percentage return (0.90 → -10%)
func ToReturnPct(growthFactor float64) float64 {
	return 100.0 * (growthFactor - 1.0)
}
