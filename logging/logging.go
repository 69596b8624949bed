package logging

import (
	"io"
	"log"
	"os"

	"github.com/natefinch/lumberjack"
)

// New returns a logger writing to stdout, and to a rotating file at path when path is not empty.
// The returned closer releases the file, it is safe to call when no file is used.
func New(prefix string, path string) (*log.Logger, io.Closer) {
	if path == "" {
		return log.New(os.Stdout, prefix, log.LstdFlags|log.Lmsgprefix), nopCloser{}
	}

	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	return log.New(io.MultiWriter(os.Stdout, file), prefix, log.LstdFlags|log.Lmsgprefix), file
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
