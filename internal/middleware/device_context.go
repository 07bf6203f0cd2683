package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const deviceKey ctxKey = "device"

// DeviceHeader identifica el dispositivo (el "localStorage" del cliente).
const DeviceHeader = "X-Device-ID"

const maxDeviceIDLen = 128

// DeviceContext:
// - Si viene X-Device-ID válido => lo guarda en el contexto.
// - Si no, el request sigue igual; los handlers deciden si exigen dispositivo.
func DeviceContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(DeviceHeader))
		if !validDeviceID(id) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), deviceKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetDevice(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(deviceKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// validDeviceID acepta [A-Za-z0-9._-], hasta 128 chars. Se usa como namespace
// en los backends (también como segmento de key en S3).
func validDeviceID(id string) bool {
	if id == "" || len(id) > maxDeviceIDLen {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return id != "." && id != ".."
}
