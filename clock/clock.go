package clock

import "time"

//go:generate mockgen --build_flags=--mod=mod -source=./clock.go -destination=./test/mock_clock.go -package test

// Clock supplies the current time to generators that anchor values to "now"
type Clock interface {
	Now() time.Time
}

func New() Clock {
	return &systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Fixed returns a clock which always reports t
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (f fixedClock) Now() time.Time {
	return f.t
}
