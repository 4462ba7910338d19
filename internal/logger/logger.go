// Package logger — единый вывод логов ucal-gpsmon с префиксом и учётом quiet.
package logger

import "log"

// Quiet при true отключает информационные сообщения (Info); Error выводится всегда.
var Quiet bool

// Info выводит сообщение с префиксом "ucal-gpsmon: ", если Quiet == false.
func Info(format string, args ...interface{}) {
	if Quiet {
		return
	}
	log.Printf("ucal-gpsmon: "+format, args...)
}

// Error выводит сообщение об ошибке с префиксом "ucal-gpsmon: " всегда.
func Error(format string, args ...interface{}) {
	log.Printf("ucal-gpsmon: "+format, args...)
}
