package logger_test

import (
	"github.com/maxkimambo/fate/internal/logger"
)

func Example_channels() {
	logger.Setup(true, false, false)

	logger.Op.With(logger.WithRunID("3f0c1c52"), logger.Field{Key: "task", Value: "build"}).
		Debug("Resolving dependencies")

	logger.User.Task("build")
	logger.User.Action("go build ./...")
	logger.User.Successf("'%s' completed", "build")
}
