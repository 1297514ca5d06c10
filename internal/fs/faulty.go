package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"sync"
	"syscall"
)

// Op selects which [FS] methods a fault applies to.
type Op uint8

// Operations that can be failed. Combine with |.
const (
	OpRead Op = 1 << iota
	OpWrite
	OpMkdir
	OpStat

	OpAll = OpRead | OpWrite | OpMkdir | OpStat
)

// Faulty wraps an [FS] and fails selected operations on selected paths.
//
// Unlike a random fault injector, Faulty is deterministic: a registered
// fault fires on every matching call until [Faulty.Clear] is called.
// Injected errors are *fs.PathError values wrapped in [InjectedError], so
// errors.Is(err, os.ErrPermission) and [IsInjected] both work on them.
type Faulty struct {
	fs FS

	mu     sync.Mutex
	faults map[string]fault
	calls  map[Op]int
}

type fault struct {
	ops Op
	err error
}

// NewFaulty returns a Faulty that passes all calls through to fs until
// faults are registered.
func NewFaulty(fs FS) *Faulty {
	return &Faulty{
		fs:     fs,
		faults: make(map[string]fault),
		calls:  make(map[Op]int),
	}
}

// Fail makes ops on path return errno. A zero errno means EIO.
// Registering a path again replaces its previous fault.
func (f *Faulty) Fail(ops Op, path string, errno syscall.Errno) {
	if errno == 0 {
		errno = syscall.EIO
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.faults[filepath.Clean(path)] = fault{ops: ops, err: errno}
}

// Clear removes all registered faults.
func (f *Faulty) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	clear(f.faults)
}

// Calls returns how many times op was invoked, failed or not.
func (f *Faulty) Calls(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[op]
}

func (f *Faulty) ReadFile(path string) ([]byte, error) {
	if err := f.check(OpRead, "read", path); err != nil {
		return nil, err
	}

	return f.fs.ReadFile(path)
}

func (f *Faulty) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := f.check(OpWrite, "write", path); err != nil {
		return err
	}

	return f.fs.WriteFileAtomic(path, data, perm)
}

func (f *Faulty) MkdirAll(path string, perm os.FileMode) error {
	if err := f.check(OpMkdir, "mkdir", path); err != nil {
		return err
	}

	return f.fs.MkdirAll(path, perm)
}

func (f *Faulty) Stat(path string) (os.FileInfo, error) {
	if err := f.check(OpStat, "stat", path); err != nil {
		return nil, err
	}

	return f.fs.Stat(path)
}

func (f *Faulty) Exists(path string) (bool, error) {
	if err := f.check(OpStat, "stat", path); err != nil {
		return false, err
	}

	return f.fs.Exists(path)
}

func (f *Faulty) check(op Op, name, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[op]++

	flt, ok := f.faults[filepath.Clean(path)]
	if !ok || flt.ops&op == 0 {
		return nil
	}

	return &InjectedError{Err: &iofs.PathError{Op: name, Path: path, Err: flt.err}}
}

// Compile-time interface check.
var _ FS = (*Faulty)(nil)
