/*
Copyright 2026 Nscale.

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

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"

	"github.com/unikorn-cloud/e2e/pkg/config"

	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Logger is a logr.Logger bound to an automation log file.
type Logger struct {
	logr.Logger

	file *os.File
}

// New creates the automation log under the results directory, truncating any
// previous run, and tees every record to console when it is not nil.
func New(c *config.Config, console io.Writer) (*Logger, error) {
	path := c.LogPath()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	if c.Log.Debug {
		level = zapcore.DebugLevel
	}

	var out io.Writer = file
	if console != nil {
		out = io.MultiWriter(file, console)
	}

	logger := zap.New(
		zap.WriteTo(out),
		zap.Level(level),
		zap.UseDevMode(false),
	)

	return &Logger{
		Logger: logger.WithName("e2e"),
		file:   file,
	}, nil
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}

	if err := l.file.Sync(); err != nil {
		return err
	}

	return l.file.Close()
}
