// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON
// (or text) logging with configurable log levels, plus helpers for carrying a
// logger in a context and for capturing log output in tests.
package logger
