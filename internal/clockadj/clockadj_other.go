// Package clockadj делает скачок или плавную коррекцию системных часов.
//
//go:build !linux

package clockadj

// Slew — заглушка на не-Linux (коррекция не выполняется).
func Slew(offsetNs int64) error {
	_ = offsetNs
	return nil
}

// SetFrequency — заглушка на не-Linux.
func SetFrequency(ppm float64) error {
	_ = ppm
	return nil
}

// Step — заглушка на не-Linux; unixSec/nanos приходят из pkg/ucal так же,
// как в Linux-реализации.
func Step(unixSec int64, nanos int32) error {
	_ = unixSec
	_ = nanos
	return nil
}

// GetFrequency — заглушка на не-Linux.
func GetFrequency() (ppm float64, err error) {
	return 0, nil
}

// GranularityNs — заглушка на не-Linux.
func GranularityNs() int64 {
	return 0
}
