// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-library-sync/internal/adapter"
	"github.com/MKhiriev/go-library-sync/internal/service"
)

// humanizeError turns service failures into a line for the status bar.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrSessionInvalid):
		return "Сессия недействительна, проверьте ключ доступа"
	case errors.Is(err, service.ErrNoAddonConfigured):
		return "Аддон не настроен"
	case errors.Is(err, service.ErrRemoteUnavailable), errors.Is(err, adapter.ErrNetworkFailure):
		return "Отсутствует сеть или Сервер недоступен"
	case errors.Is(err, adapter.ErrDecodeFailure), errors.Is(err, service.ErrUnexpectedResponse):
		return "Сервер вернул неожиданный ответ"
	case errors.Is(err, adapter.ErrUnsupportedResource):
		return "Аддон не поддерживает этот ресурс"
	default:
		return err.Error()
	}
}
