// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var _ Factory = (*factory)(nil)

// Factory creates new instances of different types of Logger
type Factory interface {
	// Make creates a new logger with name [name]
	Make(name string) (Logger, error)

	// Close stops all of a Factory's instantiated loggers. The factory can
	// make new loggers afterwards.
	Close()
}

type factory struct {
	config Config
	lock   sync.Mutex

	// For each logger created by this factory:
	// Logger name --> the logger.
	loggers map[string]Logger
}

// NewFactory returns a new instance of a Factory producing loggers configured
// with the values set in the [config] parameter
func NewFactory(config Config) Factory {
	return &factory{
		config:  config,
		loggers: make(map[string]Logger),
	}
}

// Assumes [f.lock] is held
func (f *factory) makeLogger(config Config) (Logger, error) {
	if _, ok := f.loggers[config.LoggerName]; ok {
		return nil, fmt.Errorf("logger with name %q already exists", config.LoggerName)
	}

	var cores []WrappedCore
	if !config.DisableWriterDisplaying {
		cores = append(cores, NewWrappedCore(config.DisplayLevel, nopCloser{os.Stderr}, config.LogFormat.ConsoleEncoder()))
	}
	if config.Directory != "" {
		if err := os.MkdirAll(config.Directory, 0o750); err != nil {
			return nil, fmt.Errorf("couldn't create log directory: %w", err)
		}
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(config.Directory, config.LoggerName+".log"),
			MaxSize:    config.MaxSize,
			MaxAge:     int(config.MaxAge.Hours() / 24),
			MaxBackups: config.MaxFiles,
			Compress:   config.Compress,
		}
		cores = append(cores, NewWrappedCore(config.LogLevel, rw, config.LogFormat.FileEncoder()))
	}

	logger := NewLogger(config.MsgPrefix, cores...)
	f.loggers[config.LoggerName] = logger
	return logger, nil
}

func (f *factory) Make(name string) (Logger, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	config := f.config
	config.LoggerName = name
	return f.makeLogger(config)
}

func (f *factory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, logger := range f.loggers {
		logger.Stop()
	}
	f.loggers = make(map[string]Logger)
}

// nopCloser keeps Stop from closing stderr.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
