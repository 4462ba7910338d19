package posixtz

// LoadZone разбирает строку TZ в формате POSIX и возвращает готовый к
// использованию контекст пересчёта. Не требует, чтобы вся строка была
// потреблена разбором — возвращённый остаток можно игнорировать или
// проверить отдельно, если это важно вызывающему коду.
func LoadZone(spec string) (*Ctx, string, error) {
	z, rest, ok := ParseZone(spec)
	if !ok {
		return nil, spec, errInvalidSpec(spec)
	}
	return NewCtx(&z), rest, nil
}

type errInvalidSpec string

func (e errInvalidSpec) Error() string { return "posixtz: invalid TZ spec: " + string(e) }
