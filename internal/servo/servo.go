// Package servo превращает последовательность расхождений часов в
// коррекции частоты для internal/clockadj.
package servo

// Algorithm — алгоритм дисциплинирования часов: Update получает текущее
// расхождение в наносекундах и секунды, прошедшие с прошлого отсчёта,
// и возвращает коррекцию частоты как относительную долю (1e-6 == 1ppm).
type Algorithm interface {
	Update(offsetNs, dtSec float64) (freqAdjustment float64)
	Reset()
}

// PID — пропорционально-интегрально-дифференциальный регулятор частоты.
type PID struct {
	Kp, Ki, Kd    float64
	Integral      float64
	LastError     float64
	MaxIntegral   float64
	MaxAdjustment float64
}

// NewPID создаёт PID; нулевая тройка (kp,ki,kd) заменяется мягкими
// коэффициентами по умолчанию.
func NewPID(kp, ki, kd float64) *PID {
	if kp == 0 && ki == 0 && kd == 0 {
		kp, ki, kd = 0.1, 0.01, 0.001
	}
	return &PID{
		Kp:            kp,
		Ki:            ki,
		Kd:            kd,
		MaxIntegral:   1e9,
		MaxAdjustment: 100e-6,
	}
}

// Update реализует Algorithm.
func (p *PID) Update(offsetNs, dtSec float64) float64 {
	if dtSec <= 0 {
		return 0
	}
	p.Integral += offsetNs * dtSec
	p.Integral = clamp(p.Integral, -p.MaxIntegral, p.MaxIntegral)
	derivative := (offsetNs - p.LastError) / dtSec
	p.LastError = offsetNs

	out := p.Kp*offsetNs + p.Ki*p.Integral + p.Kd*derivative
	return clamp(out, -p.MaxAdjustment, p.MaxAdjustment)
}

// Reset сбрасывает накопленное состояние.
func (p *PID) Reset() {
	p.Integral = 0
	p.LastError = 0
}

// PI — пропорционально-интегральный регулятор, для приёмников с шумом
// расхождения, на которых дифференциальная составляющая PID только мешает.
type PI struct {
	Kp, Ki        float64
	Integral      float64
	MaxIntegral   float64
	MaxAdjustment float64
}

// NewPI создаёт PI с мягкими коэффициентами по умолчанию, если оба нулевые.
func NewPI(kp, ki float64) *PI {
	if kp == 0 && ki == 0 {
		kp, ki = 0.1, 0.01
	}
	return &PI{
		Kp:            kp,
		Ki:            ki,
		MaxIntegral:   1e9,
		MaxAdjustment: 100e-6,
	}
}

// Update реализует Algorithm.
func (pi *PI) Update(offsetNs, dtSec float64) float64 {
	if dtSec <= 0 {
		return 0
	}
	pi.Integral += offsetNs * dtSec
	pi.Integral = clamp(pi.Integral, -pi.MaxIntegral, pi.MaxIntegral)
	out := pi.Kp*offsetNs + pi.Ki*pi.Integral
	return clamp(out, -pi.MaxAdjustment, pi.MaxAdjustment)
}

// Reset сбрасывает накопленное состояние.
func (pi *PI) Reset() {
	pi.Integral = 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
