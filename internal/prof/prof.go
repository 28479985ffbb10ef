// Package prof writes pprof CPU and heap profiles.
package prof

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Session is an active profiling run started by Start.
type Session struct {
	cpuFile *os.File
	memPath string
	stopped bool
}

// Start begins CPU profiling into cpuPath and arranges for a heap profile to
// be written to memPath on Stop. Empty paths disable the profile.
func Start(cpuPath, memPath string) (*Session, error) {
	s := &Session{memPath: memPath}
	if cpuPath == "" {
		return s, nil
	}
	f, err := os.Create(cpuPath)
	if err != nil {
		return nil, fmt.Errorf("failed to start cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to start cpu profile: %w", err)
	}
	s.cpuFile = f
	return s, nil
}

// Stop ends the CPU profile and writes the heap profile. It is safe to call
// more than once.
func (s *Session) Stop() error {
	if s == nil || s.stopped {
		return nil
	}
	s.stopped = true
	var errs []error
	if s.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := s.cpuFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close cpu profile: %w", err))
		}
	}
	if s.memPath != "" {
		if err := WriteMem(s.memPath); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WriteMem captures a heap profile to the supplied file path.
func WriteMem(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write heap profile: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("failed to write heap profile: %w", err)
	}
	return nil
}
