// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// MessageResponse acknowledges an operation that returns no resource
type MessageResponse struct {
	Message string `json:"message"`
}

const CodeSuccess = "Success"

// Response wraps the payload of a successful entity request
type Response struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func WriteData(w http.ResponseWriter, status int, message string, data any) {
	WriteJSON(w, status, Response{Code: CodeSuccess, Message: message, Data: data})
}
