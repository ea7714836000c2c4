package errcode

import (
	"log/slog"

	"github.com/rs/zerolog"
)

// LogValue implements slog.LogValuer, logging e as a group:
//
//	err.category=PosixError err.code=2 err.message="No such file or directory"
func (e ErrorCode) LogValue() slog.Value {
	var buf MessageBuf
	attrs := []slog.Attr{
		slog.String("category", e.Category().Name()),
		slog.Int("code", int(e.code)),
	}
	if sym := e.Symbol(); sym != "" {
		attrs = append(attrs, slog.String("symbol", sym))
	}
	attrs = append(attrs,
		slog.String("message", string(e.Message(&buf))),
		slog.Bool("would_block", e.IsWouldBlock()),
	)
	return slog.GroupValue(attrs...)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler:
//
//	log.Error().Object("errno", code).Msg("read failed")
func (e ErrorCode) MarshalZerologObject(ev *zerolog.Event) {
	var buf MessageBuf
	ev.Str("category", e.Category().Name()).
		Int32("code", e.code)
	if sym := e.Symbol(); sym != "" {
		ev.Str("symbol", sym)
	}
	ev.Bytes("message", e.Message(&buf)).
		Bool("would_block", e.IsWouldBlock())
}
