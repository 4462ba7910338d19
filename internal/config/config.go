// Package config описывает YAML-конфигурацию сессии ucal-gpsmon: какой
// приёмник слушать и какими параметрами разворачивать его время через
// pkg/ucal (базовая дата GPS-эры, смещение leap-секунд, опорная точка NTP,
// строка POSIX TZ для локального отображения).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jnperlin/ucal/pkg/ucal"
)

// Config — конфигурация ucal-gpsmon.
type Config struct {
	Device    DeviceConfig    `yaml:"device"`
	Timepulse TimepulseConfig `yaml:"timepulse"`
	Time      TimeConfig      `yaml:"time"`
}

// DeviceConfig — последовательный порт UBX/GNSS приёмника.
type DeviceConfig struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// TimepulseConfig — параметры PPS/time pulse (CFG-TP5).
type TimepulseConfig struct {
	PulseWidthMs    float64 `yaml:"pulse_width_ms"`
	TPIdx           uint8   `yaml:"tp_idx"`
	AntCableDelayNs int16   `yaml:"ant_cable_delay_ns"`
	AlignToTow      bool    `yaml:"align_to_tow"`
}

// TimeConfig — параметры развёртывания времени через pkg/ucal.
type TimeConfig struct {
	// LeapSeconds — текущее смещение GPS-UTC в секундах, значение для
	// аргумента leapSeconds в GPSMapRawToUnix/GPSMapTime (ucal не хранит
	// таблицы leap-секунд).
	LeapSeconds int16 `yaml:"leap_seconds"`
	// GPSBaseDate — "YYYY-MM-DD", ближайшая дата, относительно которой
	// разворачивается 10-битный номер недели GPS. Пусто = начало эры GPS.
	GPSBaseDate string `yaml:"gps_base_date"`
	// NTPPivot — UNIX-секунды, ближайшие к которым разворачивается
	// 32-битный счётчик секунд NTP. Ноль = эпоха UNIX.
	NTPPivot int64 `yaml:"ntp_pivot"`
	// PosixTZ — строка часового пояса POSIX (см. internal/posixtz), для
	// отображения развёрнутого времени в местном времени.
	PosixTZ string `yaml:"posix_tz"`
}

// Default возвращает конфиг по умолчанию: /dev/ttyS0 @ 9600, time pulse
// 5мс выровненный по TOW, без leap-секунд, GPS-эра от начала, UTC.
func Default() *Config {
	return &Config{
		Device: DeviceConfig{
			Port: "/dev/ttyS0",
			Baud: 9600,
		},
		Timepulse: TimepulseConfig{
			PulseWidthMs: 5,
			TPIdx:        0,
			AlignToTow:   true,
		},
		Time: TimeConfig{
			PosixTZ: "UTC0",
		},
	}
}

// Load читает конфиг из YAML и подставляет значения по умолчанию для
// незаполненных полей.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(&c)
	return &c, nil
}

// GPSBaseRDN парсит Time.GPSBaseDate ("YYYY-MM-DD") в RDN через ucal,
// возвращая начало эры GPS (ucal.RDNGps), если поле пусто или не парсится.
func (c *Config) GPSBaseRDN() ucal.RDN {
	if c.Time.GPSBaseDate == "" {
		return ucal.RDNGps
	}
	var y, m, d int16
	if _, err := fmt.Sscanf(c.Time.GPSBaseDate, "%d-%d-%d", &y, &m, &d); err != nil {
		return ucal.RDNGps
	}
	return ucal.GregorianToRDN(y, m, d)
}

func applyDefaults(c *Config) {
	d := Default()
	if c.Device.Port == "" {
		c.Device.Port = d.Device.Port
	}
	if c.Device.Baud == 0 {
		c.Device.Baud = d.Device.Baud
	}
	if c.Timepulse.PulseWidthMs == 0 {
		c.Timepulse.PulseWidthMs = d.Timepulse.PulseWidthMs
	}
	if c.Time.PosixTZ == "" {
		c.Time.PosixTZ = d.Time.PosixTZ
	}
}
