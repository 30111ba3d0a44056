// Package logger provides slog attribute helpers shared across the
// library. Helpers use the empty Attr pattern for nil safety, so call
// sites never need explicit guards:
//
//	log.Debug("file cached",
//		logger.Component("uploadcache"),
//		logger.CacheName(name),
//		logger.Error(err), // dropped when err is nil
//	)
//
// The library itself never constructs loggers; components accept an
// optional *slog.Logger and default to a discard handler, keeping logging
// an external concern.
package logger
