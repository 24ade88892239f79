package logging

import "go.uber.org/zap"

func NewLogger(name string, debug bool) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return logger.Named(name), nil
}
