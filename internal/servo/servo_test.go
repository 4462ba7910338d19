package servo

import "testing"

func TestPID_Update(t *testing.T) {
	p := NewPID(0.1, 0.01, 0.001)

	out := p.Update(1e6, 1) // расхождение 1мс, dt=1с
	if out <= 0 {
		t.Errorf("PID Update(1e6): ожидали положительную коррекцию, получили %v", out)
	}
	if out > 100e-6 {
		t.Errorf("PID Update: коррекция превышает MaxAdjustment: %v", out)
	}

	out2 := p.Update(-1e6, 1)
	if out2 >= 0 {
		t.Errorf("PID Update(-1e6): ожидали отрицательную коррекцию, получили %v", out2)
	}

	p.Reset()
	out3 := p.Update(0, 1)
	if out3 != 0 {
		t.Errorf("PID Update(0) после Reset: ожидали 0, получили %v", out3)
	}
}

func TestPID_Reset(t *testing.T) {
	p := NewPID(0.1, 0.01, 0.001)
	p.Update(1e9, 1)
	p.Reset()
	out := p.Update(0, 1)
	if out != 0 {
		t.Errorf("интеграл должен сброситься в ноль, получили %v", out)
	}
}

func TestPID_ZeroDt(t *testing.T) {
	p := NewPID(0.1, 0.01, 0.001)
	if out := p.Update(1e9, 0); out != 0 {
		t.Errorf("Update с dt=0 должен вернуть 0, получили %v", out)
	}
}

func TestPI_Update(t *testing.T) {
	pi := NewPI(0.1, 0.01)
	out := pi.Update(500e6, 1) // 500мс
	if out <= 0 {
		t.Errorf("PI Update(500e6): ожидали положительную коррекцию, получили %v", out)
	}
	pi.Reset()
	out2 := pi.Update(0, 1)
	if out2 != 0 {
		t.Errorf("PI Update(0) после Reset: ожидали 0, получили %v", out2)
	}
}

func TestLinReg_Update(t *testing.T) {
	lr := NewLinReg()

	for i := 0; i < 10; i++ {
		_ = lr.Update(100e6, 1) // 100мс, постоянное расхождение
	}
	out := lr.Update(100e6, 1)
	if out != 0 && (out > 1e-3 || out < -1e-3) {
		t.Errorf("LinReg: неожиданно большая коррекция %v", out)
	}
	lr.Reset()
	out2 := lr.Update(0, 1)
	if out2 != 0 {
		t.Errorf("LinReg после Reset: ожидали 0, получили %v", out2)
	}
}
