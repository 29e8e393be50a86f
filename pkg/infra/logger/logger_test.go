package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromEnv(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, levelFromEnv("debug"))
	assert.Equal(t, logrus.WarnLevel, levelFromEnv("WARNING"))
	assert.Equal(t, logrus.ErrorLevel, levelFromEnv("error"))
	assert.Equal(t, logrus.InfoLevel, levelFromEnv(""))
	assert.Equal(t, logrus.InfoLevel, levelFromEnv("verbose"))
}
