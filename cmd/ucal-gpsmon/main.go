// ucal-gpsmon читает кадры UBX-NAV-PVT с GNSS приёмника u-blox и разбирает
// их в RDN через pkg/ucal. Умеет настраивать time pulse приёмника (CFG-TP5)
// и, на Linux, дисциплинировать системные часы по GPS-времени.
//
// Использование:
//
//	ucal-gpsmon -configure              — настроить time pulse и выйти
//	ucal-gpsmon -run -config gpsmon.yml — читать NAV-PVT и дисциплинировать часы
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jnperlin/ucal/internal/clockadj"
	"github.com/jnperlin/ucal/internal/config"
	"github.com/jnperlin/ucal/internal/logger"
	"github.com/jnperlin/ucal/internal/servo"
	"github.com/jnperlin/ucal/internal/ubxfeed"
	"github.com/jnperlin/ucal/pkg/ucal"
)

func main() {
	configure := flag.Bool("configure", false, "настроить time pulse приёмника и выйти")
	run := flag.Bool("run", false, "читать NAV-PVT и дисциплинировать системные часы")
	configPath := flag.String("config", "", "путь к YAML конфигу (по умолчанию gpsmon.yml)")
	port := flag.String("port", "", "последовательный порт (переопределяет config)")
	baud := flag.Int("baud", 0, "скорость порта (переопределяет config)")
	pulseMs := flag.Float64("pulse-width-ms", 0, "длительность импульса в мс (переопределяет config)")
	quiet := flag.Bool("quiet", false, "меньше вывода")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil && *configPath != "" {
		log.Fatalf("config: %v", err)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if *port != "" {
		cfg.Device.Port = *port
	}
	if *baud != 0 {
		cfg.Device.Baud = *baud
	}
	if *pulseMs > 0 {
		cfg.Timepulse.PulseWidthMs = *pulseMs
	}
	logger.Quiet = *quiet

	if *configure {
		runConfigure(cfg, *quiet)
		return
	}
	if *run {
		runMonitorWithShutdown(cfg, *quiet)
		return
	}

	runConfigure(cfg, *quiet)
	if !*quiet {
		fmt.Println("ucal-gpsmon: для дисциплинирования часов используйте -run с конфигом.")
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = "gpsmon.yml"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return config.Load(path)
}

func runConfigure(cfg *config.Config, quiet bool) {
	port, err := ubxfeed.Open(cfg.Device.Port, cfg.Device.Baud)
	if err != nil {
		log.Fatalf("открытие порта %s: %v", cfg.Device.Port, err)
	}
	defer port.Close()

	tp := ubxfeed.TP5Config{
		TPIdx:             cfg.Timepulse.TPIdx,
		AntCableDelayNs:   cfg.Timepulse.AntCableDelayNs,
		FreqPeriod:        1000000,
		FreqPeriodLock:    1000000,
		PulseLenRatioNs:   uint32(cfg.Timepulse.PulseWidthMs * 1e6),
		PulseLenRatioLock: uint32(cfg.Timepulse.PulseWidthMs * 1e6),
		Active:            true,
		LockGnssFreq:      true,
		LockedOtherSet:    true,
		IsLength:          true,
		AlignToTow:        cfg.Timepulse.AlignToTow,
	}
	if err := port.ConfigureTimePulse(tp); err != nil {
		log.Fatalf("настройка time pulse: %v", err)
	}
	if !quiet {
		fmt.Printf("time pulse настроен: %s, %d baud, импульс %.2fмс\n",
			cfg.Device.Port, cfg.Device.Baud, cfg.Timepulse.PulseWidthMs)
	}
}

// runMonitorWithShutdown читает NAV-PVT через monitorLoop до SIGINT/SIGTERM,
// после чего закрывает порт и завершает процесс.
func runMonitorWithShutdown(cfg *config.Config, quiet bool) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("получен сигнал %v, завершение...", sig)
		cancel()
	}()

	if err := monitorLoop(ctx, cfg); err != nil && ctx.Err() == nil {
		logger.Error("%v", err)
	}
}

// monitorLoop открывает приёмник, читает кадры NAV-PVT, переводит их в
// RDN/UNIX секунды через pkg/ucal и подаёт расхождение на PID регулятор
// и internal/clockadj.
func monitorLoop(ctx context.Context, cfg *config.Config) error {
	port, err := ubxfeed.Open(cfg.Device.Port, cfg.Device.Baud)
	if err != nil {
		return fmt.Errorf("открытие порта %s: %w", cfg.Device.Port, err)
	}
	defer port.Close()

	var tz *ucal.TZZone
	if cfg.Time.PosixTZ != "" {
		tz, _, err = ucal.LoadTZ(cfg.Time.PosixTZ)
		if err != nil {
			return fmt.Errorf("загрузка POSIX TZ %q: %w", cfg.Time.PosixTZ, err)
		}
	}

	disc := servo.NewPID(0, 0, 0)
	clock := servo.SystemClock{}
	lastSample := time.Time{}
	gpsBase := cfg.GPSBaseRDN()
	logger.Info("гранулярность часов: %dнс, leap seconds: %d, gps era base rdn: %d, ntp pivot: %d",
		clockadj.GranularityNs(), cfg.Time.LeapSeconds, gpsBase, cfg.Time.NTPPivot)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		packet, err := port.ReadUBX(2 * time.Second)
		if err != nil {
			logger.Error("чтение: %v", err)
			continue
		}
		if !ubxfeed.IsNAVPVTPacket(packet) {
			continue
		}
		pvt, ok := ubxfeed.ParseNAVPVTTime(ubxfeed.NAVPVTPayload(packet))
		if !ok || !pvt.FullyResolved {
			continue
		}

		unixSec := int64(pvt.RDN-ucal.RDNUnix)*86400 + int64(pvt.SecOfDay)
		now := time.Now()
		offsetNs := float64(now.Unix()-unixSec)*1e9 + float64(now.Nanosecond()-int(pvt.NanoOfSec))

		dtSec := 1.0
		if !lastSample.IsZero() {
			dtSec = now.Sub(lastSample).Seconds()
		}
		lastSample = now

		if offsetNs > 500e6 || offsetNs < -500e6 {
			if err := clock.Step(unixSec, pvt.NanoOfSec); err != nil {
				logger.Error("скачок: %v", err)
			}
			disc.Reset()
		} else {
			ppm := disc.Update(offsetNs, dtSec) * 1e6
			if err := clock.SetFrequency(ppm); err != nil {
				logger.Error("коррекция частоты: %v", err)
			}
		}

		if tz != nil {
			info := tz.UTCToLocal(unixSec)
			logger.Info("fix: rdn=%d sec=%d offset=%.0fнс local-offset=%dс dst=%v",
				pvt.RDN, pvt.SecOfDay, offsetNs, info.Offs, info.IsDst)
		} else {
			logger.Info("fix: rdn=%d sec=%d offset=%.0fнс", pvt.RDN, pvt.SecOfDay, offsetNs)
		}
	}
}
