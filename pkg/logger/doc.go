// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers that keep key names consistent across the event
// packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("firmware")),
//	)
//
//	log.Warn("queue full, event dropped",
//	    logger.Topic("sensor.temp"),
//	    logger.QueueID(3),
//	    logger.EventID(41),
//	)
//
// The level and format can also be taken from the environment:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)          // LOG_LEVEL, LOG_FORMAT
//	log, err := logger.FromConfig(cfg)
//
// Helpers that take an error or an optional value return an empty slog.Attr
// when there is nothing to record, so they can be passed unconditionally:
//
//	log.Info("publish finished", logger.Error(err))
package logger
