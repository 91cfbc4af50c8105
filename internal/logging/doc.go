// Package logging provides the logging interface used by the configuration
// loader and the calibration harness. The arithmetic packages never log.
//
// Two adapters are available: ZerologAdapter (structured, the default) and
// StdLoggerAdapter for callers that already hold a *log.Logger.
package logging
