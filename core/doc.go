// Package core defines the application error model shared by every layer of
// the server.
//
// AppError is a plain struct implementing error. It carries the HTTP status
// code, a human readable message, an operational flag, a status string derived
// from the code ("fail" for 4xx, "error" otherwise), and a stack trace captured
// at construction. Optional fields hold a machine readable code, field level
// ValidationErrors and a wrapped cause.
//
//	err := core.NewAppError(http.StatusConflict, "email already registered",
//		core.WithCode("user.email_taken"),
//	)
//
// AppError values travel up the call chain and are rendered exactly once by
// the error formatter in package handler.
package core
