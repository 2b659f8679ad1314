package ember

import "math"

// EasingFunc shapes a normalized time p in [0, 1] into a motion fraction.
// Every function maps 0 to 0 and 1 to 1 exactly; the elastic, back, and
// bounce families intentionally overshoot that range at interior points.
// Easing functions are pure and safe for concurrent use.
type EasingFunc func(p float64) float64

// Linear returns p unchanged.
func Linear(p float64) float64 { return p }

// QuadraticEaseIn follows y = p^2.
func QuadraticEaseIn(p float64) float64 { return p * p }

// QuadraticEaseOut follows y = -p^2 + 2p.
func QuadraticEaseOut(p float64) float64 { return -(p * (p - 2)) }

// QuadraticEaseInOut is piecewise quadratic, accelerating to the midpoint
// then decelerating.
func QuadraticEaseInOut(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	return -2*p*p + 4*p - 1
}

// CubicEaseIn follows y = p^3.
func CubicEaseIn(p float64) float64 { return p * p * p }

// CubicEaseOut follows y = (p-1)^3 + 1.
func CubicEaseOut(p float64) float64 {
	f := p - 1
	return f*f*f + 1
}

// CubicEaseInOut is piecewise cubic.
func CubicEaseInOut(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	f := 2*p - 2
	return 0.5*f*f*f + 1
}

// QuarticEaseIn follows y = p^4.
func QuarticEaseIn(p float64) float64 { return p * p * p * p }

// QuarticEaseOut follows y = 1 - (p-1)^4.
func QuarticEaseOut(p float64) float64 {
	f := p - 1
	return f*f*f*(1-p) + 1
}

// QuarticEaseInOut is piecewise quartic.
func QuarticEaseInOut(p float64) float64 {
	if p < 0.5 {
		return 8 * p * p * p * p
	}
	f := p - 1
	return -8*f*f*f*f + 1
}

// QuinticEaseIn follows y = p^5.
func QuinticEaseIn(p float64) float64 { return p * p * p * p * p }

// QuinticEaseOut follows y = (p-1)^5 + 1.
func QuinticEaseOut(p float64) float64 {
	f := p - 1
	return f*f*f*f*f + 1
}

// QuinticEaseInOut is piecewise quintic.
func QuinticEaseInOut(p float64) float64 {
	if p < 0.5 {
		return 16 * p * p * p * p * p
	}
	f := 2*p - 2
	return 0.5*f*f*f*f*f + 1
}

// SineEaseIn is a quarter-cycle of a sine wave.
func SineEaseIn(p float64) float64 { return math.Sin((p-1)*math.Pi/2) + 1 }

// SineEaseOut is a quarter-cycle of a sine wave, phase-shifted.
func SineEaseOut(p float64) float64 { return math.Sin(p * math.Pi / 2) }

// SineEaseInOut is half a sine wave.
func SineEaseInOut(p float64) float64 { return 0.5 * (1 - math.Cos(p*math.Pi)) }

// CircularEaseIn follows a shifted quadrant IV of the unit circle.
func CircularEaseIn(p float64) float64 { return 1 - math.Sqrt(1-p*p) }

// CircularEaseOut follows a shifted quadrant II of the unit circle.
func CircularEaseOut(p float64) float64 { return math.Sqrt((2 - p) * p) }

// CircularEaseInOut is the piecewise circular function.
func CircularEaseInOut(p float64) float64 {
	if p < 0.5 {
		return 0.5 * (1 - math.Sqrt(1-4*p*p))
	}
	return 0.5 * (math.Sqrt(-(2*p-3)*(2*p-1)) + 1)
}

// ExponentialEaseIn follows y = 2^(10(p-1)), pinned to 0 at p = 0.
func ExponentialEaseIn(p float64) float64 {
	if p == 0 {
		return p
	}
	return math.Pow(2, 10*(p-1))
}

// ExponentialEaseOut follows y = 1 - 2^(-10p), pinned to 1 at p = 1.
func ExponentialEaseOut(p float64) float64 {
	if p == 1 {
		return p
	}
	return 1 - math.Pow(2, -10*p)
}

// ExponentialEaseInOut is the piecewise exponential.
func ExponentialEaseInOut(p float64) float64 {
	if p == 0 || p == 1 {
		return p
	}
	if p < 0.5 {
		return 0.5 * math.Pow(2, 20*p-10)
	}
	return -0.5*math.Pow(2, -20*p+10) + 1
}

// ElasticEaseIn is a damped sine wave: y = sin(13π/2 p) 2^(10(p-1)).
func ElasticEaseIn(p float64) float64 {
	return math.Sin(13*p*math.Pi/2) * math.Pow(2, 10*(p-1))
}

// ElasticEaseOut is a damped sine wave: y = sin(-13π/2 (p+1)) 2^(-10p) + 1.
func ElasticEaseOut(p float64) float64 {
	return math.Sin(-13*math.Pi/2*(p+1))*math.Pow(2, -10*p) + 1
}

// ElasticEaseInOut is the piecewise exponentially damped sine wave.
func ElasticEaseInOut(p float64) float64 {
	if p < 0.5 {
		return 0.5 * math.Sin(13*math.Pi*p) * math.Pow(2, 10*(2*p-1))
	}
	return 0.5 * (math.Sin(-13*math.Pi/2*(2*p-1+1))*math.Pow(2, -10*(2*p-1)) + 2)
}

// BackEaseIn is the overshooting cubic y = p^3 - p sin(pπ).
func BackEaseIn(p float64) float64 {
	return p*p*p - p*math.Sin(p*math.Pi)
}

// BackEaseOut mirrors BackEaseIn: y = 1 - ((1-p)^3 - (1-p) sin((1-p)π)).
func BackEaseOut(p float64) float64 {
	f := 1 - p
	return 1 - (f*f*f - f*math.Sin(f*math.Pi))
}

// BackEaseInOut is the piecewise overshooting cubic.
func BackEaseInOut(p float64) float64 {
	if p < 0.5 {
		f := 2 * p
		return 0.5 * (f*f*f - f*math.Sin(f*math.Pi))
	}
	f := 1 - (2*p - 1)
	return 0.5*(1-(f*f*f-f*math.Sin(f*math.Pi))) + 0.5
}

// BounceEaseIn mirrors BounceEaseOut.
func BounceEaseIn(p float64) float64 { return 1 - BounceEaseOut(1-p) }

// BounceEaseOut is the four-segment piecewise parabola of a decaying
// bounce.
func BounceEaseOut(p float64) float64 {
	switch {
	case p < 4/11.0:
		return 121 * p * p / 16.0
	case p < 8/11.0:
		return 363/40.0*p*p - 99/10.0*p + 17/5.0
	case p < 9/10.0:
		return 4356/361.0*p*p - 35442/1805.0*p + 16061/1805.0
	default:
		return 54/5.0*p*p - 513/25.0*p + 268/25.0
	}
}

// BounceEaseInOut bounces in to the midpoint and out from it.
func BounceEaseInOut(p float64) float64 {
	if p < 0.5 {
		return 0.5 * BounceEaseIn(p*2)
	}
	return 0.5*BounceEaseOut(p*2-1) + 0.5
}

// Easings maps easing names to their functions, for hosts that select a
// curve from configuration.
var Easings = map[string]EasingFunc{
	"linear":             Linear,
	"quadratic-in":       QuadraticEaseIn,
	"quadratic-out":      QuadraticEaseOut,
	"quadratic-in-out":   QuadraticEaseInOut,
	"cubic-in":           CubicEaseIn,
	"cubic-out":          CubicEaseOut,
	"cubic-in-out":       CubicEaseInOut,
	"quartic-in":         QuarticEaseIn,
	"quartic-out":        QuarticEaseOut,
	"quartic-in-out":     QuarticEaseInOut,
	"quintic-in":         QuinticEaseIn,
	"quintic-out":        QuinticEaseOut,
	"quintic-in-out":     QuinticEaseInOut,
	"sine-in":            SineEaseIn,
	"sine-out":           SineEaseOut,
	"sine-in-out":        SineEaseInOut,
	"circular-in":        CircularEaseIn,
	"circular-out":       CircularEaseOut,
	"circular-in-out":    CircularEaseInOut,
	"exponential-in":     ExponentialEaseIn,
	"exponential-out":    ExponentialEaseOut,
	"exponential-in-out": ExponentialEaseInOut,
	"elastic-in":         ElasticEaseIn,
	"elastic-out":        ElasticEaseOut,
	"elastic-in-out":     ElasticEaseInOut,
	"back-in":            BackEaseIn,
	"back-out":           BackEaseOut,
	"back-in-out":        BackEaseInOut,
	"bounce-in":          BounceEaseIn,
	"bounce-out":         BounceEaseOut,
	"bounce-in-out":      BounceEaseInOut,
}
