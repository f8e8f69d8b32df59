// Package oteladapters provides OpenTelemetry implementations of the
// lending observability interfaces, for users who want plug-and-play
// logging, metrics and tracing without implementing the interfaces
// themselves.
//
// The adapters only depend on the OpenTelemetry APIs; providers and
// exporters remain the caller's choice.
package oteladapters
