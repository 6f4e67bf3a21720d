package utils

import (
	"go.uber.org/zap"
)

func init() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
}

func GetLogger() *zap.Logger {
	return zap.L()
}
