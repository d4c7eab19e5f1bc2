package math

import "math"

const Pi = float32(math.Pi)

// Float32 wrappers around the stdlib math routines used by the demo.

func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func Tan(x float32) float32 {
	return float32(math.Tan(float64(x)))
}

func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
