package servo

import "github.com/jnperlin/ucal/internal/clockadj"

// ClockSource применяет решения регулятора к системным часам.
type ClockSource interface {
	Step(unixSec int64, nanos int32) error
	SetFrequency(ppm float64) error
}

// SystemClock управляет internal/clockadj напрямую.
type SystemClock struct{}

// Step переводит системные часы на unixSec/nanos (скачок).
func (SystemClock) Step(unixSec int64, nanos int32) error {
	return clockadj.Step(unixSec, nanos)
}

// SetFrequency применяет коррекцию частоты (переводится в ppm).
func (SystemClock) SetFrequency(ppm float64) error {
	return clockadj.SetFrequency(ppm)
}
