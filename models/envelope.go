// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SuccessCode is the application-level status the remote API embeds in every
// response body when the call succeeded. Any other value is a rejection and
// Msg carries the user-facing reason.
const SuccessCode = 20000

// Envelope is the common response body of the remote API.
//
// The HTTP status only reports transport success; the actual outcome of the
// call is carried in Code. Data is decoded lazily into T and is meaningful
// only when [Envelope.OK] returns true.
type Envelope[T any] struct {
	// Code is the application status code. 20000 means success.
	Code int `json:"code"`

	// Msg is the server-supplied message, shown verbatim on failure.
	Msg string `json:"msg"`

	// Data holds the operation specific payload.
	Data T `json:"data"`
}

// OK reports whether the envelope carries the application success code.
func (e Envelope[T]) OK() bool {
	return e.Code == SuccessCode
}
