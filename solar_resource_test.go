package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoll(t *testing.T) {
	assert.Equal(t, []float64{4.0, 1.0, 2.0, 3.0}, roll([]float64{1.0, 2.0, 3.0, 4.0}, 1))
	assert.Equal(t, []float64{2.0, 3.0, 4.0, 1.0}, roll([]float64{1.0, 2.0, 3.0, 4.0}, -1))

	// 元のスライスを破壊しない。
	src := []float64{1.0, 2.0, 3.0, 4.0}
	roll(src, 1)
	assert.Equal(t, []float64{1.0, 2.0, 3.0, 4.0}, src)
}

func TestInterpolate_H1(t *testing.T) {
	data := []float64{1.0, 2.0, 3.0}

	// 1時間間隔の場合は rolling 以外の変換を行わない。
	assert.Equal(t, data, _interpolate(data, IntervalH1, false))
	assert.Equal(t, []float64{3.0, 1.0, 2.0}, _interpolate(data, IntervalH1, true))
}

func TestInterpolate_M15(t *testing.T) {
	data := []float64{0.0, 4.0}

	// 補間比率 {1.0, 0.75, 0.5, 0.25} により次時刻との線形補間を行う。
	interp := _interpolate(data, IntervalM15, false)
	assert.InDeltaSlice(t, []float64{0.0, 1.0, 2.0, 3.0, 4.0, 3.0, 2.0, 1.0}, interp, 1e-12)
}

func TestInterpolate_M30(t *testing.T) {
	data := []float64{0.0, 4.0}

	interp := _interpolate(data, IntervalM30, false)
	assert.InDeltaSlice(t, []float64{0.0, 2.0, 4.0, 2.0}, interp, 1e-12)
}
