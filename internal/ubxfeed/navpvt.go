package ubxfeed

import (
	"encoding/binary"

	"github.com/jnperlin/ucal/pkg/ucal"
)

// NAV class и ID (u-blox)
const (
	ClassNAV   = 0x01
	IDNAVPVT   = 0x07 // NAV-PVT: position, velocity, time
	NAVPVTSize = 92   // минимальный размер payload NAV-PVT
)

// NAV-PVT time offsets в payload (после 8-байтного header пакета: payload = packet[8:8+length])
const (
	navPvtYear  = 4  // uint16
	navPvtMonth = 6  // uint8
	navPvtDay   = 7  // uint8
	navPvtHour  = 8  // uint8
	navPvtMin   = 9  // uint8
	navPvtSec   = 10 // uint8
	navPvtValid = 11 // uint8: bit0 validDate, bit1 validTime, bit2 fullyResolved
	navPvtNano  = 16 // int32, наносекунды
)

// Valid flags NAV-PVT
const (
	NavPVTValidDate          = 1 << 0
	NavPVTValidTime          = 1 << 1
	NavPVTValidFullyResolved = 1 << 2
)

// PVTTime — момент NAV-PVT, разложенный на RDN (по григорианскому
// календарю ucal) и секунды/наносекунды с начала суток, вместо time.Time.
type PVTTime struct {
	RDN           ucal.RDN
	SecOfDay      int32
	NanoOfSec     int32
	FullyResolved bool
}

// ParseNAVPVTTime парсит время из payload UBX-NAV-PVT (92+ байт), прогоняя
// календарную дату через ucal.GregorianToRDN и время суток через
// ucal.MergeDayTime. Возвращает (PVTTime, true), если флаг validTime
// указывает на пригодное время.
func ParseNAVPVTTime(payload []byte) (PVTTime, bool) {
	if len(payload) < NAVPVTSize {
		return PVTTime{}, false
	}
	valid := payload[navPvtValid]
	if valid&NavPVTValidTime == 0 {
		return PVTTime{}, false
	}
	year := int16(binary.LittleEndian.Uint16(payload[navPvtYear:]))
	month := int16(payload[navPvtMonth])
	day := int16(payload[navPvtDay])
	hour := int16(payload[navPvtHour])
	min := int16(payload[navPvtMin])
	sec := int16(payload[navPvtSec])

	nano := int32(0)
	if len(payload) > navPvtNano+4 {
		n := int32(binary.LittleEndian.Uint32(payload[navPvtNano : navPvtNano+4]))
		switch {
		case n < 0:
			nano = 0
		case n > 999999999:
			nano = 999999999
		default:
			nano = n
		}
	}

	rdn := ucal.GregorianToRDN(year, month, day)
	secOfDay := ucal.MergeDayTime(hour, min, sec)
	return PVTTime{
		RDN:           rdn,
		SecOfDay:      secOfDay,
		NanoOfSec:     nano,
		FullyResolved: valid&NavPVTValidFullyResolved != 0,
	}, true
}

// IsNAVPVTPacket возвращает true, если пакет — UBX-NAV-PVT (class 0x01, id 0x07).
func IsNAVPVTPacket(packet []byte) bool {
	if len(packet) < 8+NAVPVTSize {
		return false
	}
	if packet[0] != Sync1 || packet[1] != Sync2 {
		return false
	}
	return packet[2] == ClassNAV && packet[3] == IDNAVPVT
}

// NAVPVTPayload возвращает payload NAV-PVT из полного пакета (без header и checksum).
func NAVPVTPayload(packet []byte) []byte {
	if len(packet) < 8 {
		return nil
	}
	payloadLen := int(binary.LittleEndian.Uint16(packet[4:6]))
	if len(packet) < 8+payloadLen {
		return nil
	}
	return packet[8 : 8+payloadLen]
}
