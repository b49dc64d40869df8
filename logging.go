package chainerr

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/rs/zerolog"
)

// LogValue implements slog.LogValuer. The error is logged as a group with its
// name, composed message, merged info and the rendered cause:
//
//	logger.Error("request failed", "error", err)
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("name", e.Name()),
		slog.String("message", e.Error()),
	}

	if info := e.Info(); len(info) > 0 {
		infoAttrs := make([]any, 0, len(info))
		for _, k := range slices.Sorted(maps.Keys(info)) {
			infoAttrs = append(infoAttrs, slog.Any(k, info[k]))
		}
		attrs = append(attrs, slog.Group("info", infoAttrs...))
	}

	if cause := e.Unwrap(); cause != nil {
		attrs = append(attrs, slog.String("cause", Describe(cause)))
	}

	return slog.GroupValue(attrs...)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler with the same
// fields as LogValue:
//
//	log.Error().Object("error", err).Msg("request failed")
func (e *Error) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("name", e.Name()).Str("message", e.Error())

	if info := e.Info(); len(info) > 0 {
		ev.Dict("info", zerolog.Dict().Fields(info))
	}

	if cause := e.Unwrap(); cause != nil {
		ev.Str("cause", Describe(cause))
	}
}
