// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bufferCloser struct {
	bytes.Buffer
}

func (*bufferCloser) Close() error {
	return nil
}

func TestLogLevelFiltering(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("sampler", NewWrappedCore(Info, buf, Plain.ConsoleEncoder()))

	log.Debug("hidden")
	require.Zero(buf.Len())

	log.Info("drew sample", zap.Uint64("value", 7))
	require.Contains(buf.String(), "drew sample")
	require.Contains(buf.String(), "INFO")
	require.Contains(buf.String(), "sampler")

	buf.Reset()
	log.SetLevel(Debug)
	require.True(log.Enabled(Debug))
	require.False(log.Enabled(Verbo))
	log.Debug("now visible")
	require.Contains(buf.String(), "now visible")
}

func TestLogJSONFormat(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Verbo, buf, JSON.ConsoleEncoder()))
	log.Verbo("precondition violated", zap.String("op", "index"))

	require.Contains(buf.String(), `"level":"VERBO"`)
	require.Contains(buf.String(), `"op":"index"`)
}

func TestRecoverAndPanic(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Info, buf, Plain.ConsoleEncoder()))
	require.PanicsWithValue("boom", func() {
		log.RecoverAndPanic(func() {
			panic("boom")
		})
	})
	require.Contains(buf.String(), "panicking")
	require.Contains(buf.String(), "boom")
	require.Contains(buf.String(), "FATAL")

	buf.Reset()
	ran := false
	log.RecoverAndPanic(func() {
		ran = true
	})
	require.True(ran)
	require.Zero(buf.Len())
}

func TestNoLog(t *testing.T) {
	require := require.New(t)

	var log Logger = NoLog{}
	log.Info("ignored")
	require.False(log.Enabled(Fatal))

	_, err := log.Write([]byte("x"))
	require.ErrorIs(err, errNoLoggerWrite)
}
