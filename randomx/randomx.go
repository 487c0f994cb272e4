// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package randomx binds the memory-hard proof-of-work algorithm (RandomX)
// to the librandomx C library via cgo.  The binding mirrors the shape of
// every RandomX binding seen across the retrieved corpus: a Context
// wrapping a cache and a VM (light mode; no dataset is allocated), a Flag
// bitmask matching randomx_flags, and an InitCache that tears down and
// rebuilds the cache and VM for each key it is given.
package randomx

/*
#cgo CFLAGS: -I${SRCDIR}/include
#cgo LDFLAGS: -L${SRCDIR}/lib -lrandomx -lstdc++ -lm
#cgo linux LDFLAGS: -lpthread
#cgo darwin LDFLAGS: -lpthread

#include <stdlib.h>
#include <string.h>
#include <randomx.h>
*/
import "C"

import (
	"errors"
	"sync"
	"unsafe"
)

// HashSize is the length in bytes of a RandomX output hash.
const HashSize = 32

// KeySize is the length in bytes of a RandomX key (the seed hash used to
// initialize the cache/dataset).
const KeySize = 32

// Flag mirrors randomx_flags.  Flags are combined with bitwise OR and
// passed to randomx_alloc_cache/randomx_alloc_dataset/randomx_create_vm.
type Flag uint32

// RandomX flag values, matching the C enum exactly.
const (
	FlagDefault     Flag = 0
	FlagLargePages  Flag = 1 << 0
	FlagHardAES     Flag = 1 << 1
	FlagFullMem     Flag = 1 << 2
	FlagJIT         Flag = 1 << 3
	FlagSecure      Flag = 1 << 4
	FlagArgon2SSSE3 Flag = 1 << 5
	FlagArgon2AVX2  Flag = 1 << 6
	FlagArgon2      Flag = 1 << 7
)

// GetFlags returns the flags recommended for the current CPU by
// randomx_get_flags.
func GetFlags() Flag {
	return Flag(C.randomx_get_flags())
}

// Errors returned by Context methods.
var (
	ErrCacheAllocation = errors.New("randomx: failed to allocate cache")
	ErrVMCreation      = errors.New("randomx: failed to create vm")
	ErrInvalidKey      = errors.New("randomx: key must be nonempty")
	ErrNotInitialized  = errors.New("randomx: context has no cache; call InitCache first")
	ErrClosed          = errors.New("randomx: context is closed")
)

// Context wraps a RandomX cache and VM initialized with a specific key.
// One Context computes hashes for exactly one key epoch at a time;
// InitCache rekeys the same Context by releasing its previous cache and VM
// and allocating new ones for the new key.
type Context struct {
	mu     sync.Mutex
	flags  Flag
	cache  *C.randomx_cache
	vm     *C.randomx_vm
	key    []byte
	closed bool
}

// NewContext allocates a Context using the given flags.  The context has
// no key until InitCache is called; Hash returns ErrNotInitialized until
// then.
func NewContext(flags Flag) (*Context, error) {
	return &Context{flags: flags}, nil
}

// InitCache (re)initializes the context's cache and VM with key.  It is
// safe to call repeatedly on the same Context as the active key rotates;
// the previous cache and VM are released first.
func (c *Context) InitCache(key []byte) error {
	if len(key) == 0 {
		return ErrInvalidKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	c.destroyLocked()

	cache := C.randomx_alloc_cache(C.randomx_flags(c.flags))
	if cache == nil {
		return ErrCacheAllocation
	}

	keyPtr := C.CBytes(key)
	defer C.free(keyPtr)
	C.randomx_init_cache(cache, keyPtr, C.size_t(len(key)))

	vm := C.randomx_create_vm(C.randomx_flags(c.flags), cache, nil)
	if vm == nil {
		C.randomx_release_cache(cache)
		return ErrVMCreation
	}

	c.cache = cache
	c.vm = vm
	c.key = append([]byte(nil), key...)
	return nil
}

// Key returns the key the context is currently initialized with, or nil if
// InitCache has not been called.
func (c *Context) Key() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]byte(nil), c.key...)
}

// Hash computes the RandomX hash of input using the context's current
// key.  It returns ErrNotInitialized if InitCache has never been called.
func (c *Context) Hash(input []byte) ([HashSize]byte, error) {
	var out [HashSize]byte

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return out, ErrClosed
	}
	if c.vm == nil {
		return out, ErrNotInitialized
	}

	var inputPtr unsafe.Pointer
	if len(input) > 0 {
		inputPtr = C.CBytes(input)
		defer C.free(inputPtr)
	}

	C.randomx_calculate_hash(c.vm, inputPtr, C.size_t(len(input)), unsafe.Pointer(&out[0]))
	return out, nil
}

// Close releases the context's cache and VM.  It is safe to call multiple
// times.
func (c *Context) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.destroyLocked()
	c.closed = true
}

func (c *Context) destroyLocked() {
	if c.vm != nil {
		C.randomx_destroy_vm(c.vm)
		c.vm = nil
	}
	if c.cache != nil {
		C.randomx_release_cache(c.cache)
		c.cache = nil
	}
}
