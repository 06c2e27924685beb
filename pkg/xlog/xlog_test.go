package xlog_test

import (
	"path"
	"testing"

	"miniblog/pkg/xlog"

	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	xlog.Init("test", path.Join(t.TempDir(), "xlog-test.log"))
	logger := xlog.GetLogger()
	require.NotNil(t, logger)

	logger.SetLevel("TRACE")
	require.Equal(t, xlog.TRACE, logger.GetLevel())

	logger.Trace("this is trace")
	logger.Debug("this is debug")
	logger.Info("this is info")
	logger.Warning("this is warning")
	logger.Error("this is error")

	logger.SetLevel("ERROR")
	require.Equal(t, xlog.ERROR, logger.GetLevel())
	logger.Infof("suppressed at %s", "ERROR")
}
