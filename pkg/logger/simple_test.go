/*
Copyright 2019 vChain, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimpleLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	l := NewWithLevel("test", buf, LogDebug)

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	l.Warningf("warn %d", 3)
	l.Errorf("error %d", 4)

	out := buf.String()
	require.Contains(t, out, "test ")
	require.Contains(t, out, "DEBUG: debug 1")
	require.Contains(t, out, "INFO: info 2")
	require.Contains(t, out, "WARNING: warn 3")
	require.Contains(t, out, "ERROR: error 4")
}

func TestSimpleLoggerLevelFiltering(t *testing.T) {
	buf := new(bytes.Buffer)
	l := NewWithLevel("test", buf, LogWarn)

	l.Debugf("debug")
	l.Infof("info")
	l.Warningf("warn")

	out := buf.String()
	require.NotContains(t, out, "DEBUG")
	require.NotContains(t, out, "INFO")
	require.Contains(t, out, "WARNING: warn")
}

func TestLogLevelFromEnvironment(t *testing.T) {
	defer os.Unsetenv("LOG_LEVEL")

	os.Unsetenv("LOG_LEVEL")
	require.Equal(t, LogInfo, LogLevelFromEnvironment())

	os.Setenv("LOG_LEVEL", "error")
	require.Equal(t, LogError, LogLevelFromEnvironment())
	os.Setenv("LOG_LEVEL", "warn")
	require.Equal(t, LogWarn, LogLevelFromEnvironment())
	os.Setenv("LOG_LEVEL", "debug")
	require.Equal(t, LogDebug, LogLevelFromEnvironment())
	os.Setenv("LOG_LEVEL", "nonsense")
	require.Equal(t, LogInfo, LogLevelFromEnvironment())
}
