// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"sync"

	"github.com/opensyria/opensy/argon2ctx"
	"github.com/opensyria/opensy/chaincfg"
	"github.com/opensyria/opensy/randomx"
)

// Services bundles the expensive, process-wide objects a full node needs
// exactly one of: the RandomX context pool and the Argon2id emergency
// fallback context.  Both are costly enough to initialize (dataset
// allocation, parameter validation) that the reference client keeps them
// behind a lazily-initialized global rather than constructing one per
// caller; Init/Destroy below preserve that contract for code ported from
// it, while new code should prefer constructing a PowVerifier directly
// with its own pool and context where that is practical.
type Services struct {
	Pool   *MHPContextPool
	Argon2 *argon2ctx.Context
}

var (
	servicesMu   sync.Mutex
	services     *Services
	servicesRefs int
)

// InitServices initializes the global Services instance for params if it
// is not already initialized, incrementing a reference count.  Every
// InitServices call must be matched with exactly one DestroyServices call.
func InitServices(params *chaincfg.Params) (*Services, error) {
	servicesMu.Lock()
	defer servicesMu.Unlock()

	if services != nil {
		servicesRefs++
		return services, nil
	}

	pool := NewMHPContextPool(randomx.GetFlags())

	var argon2Ctx *argon2ctx.Context
	if params.Argon2EmergencyHeight >= 0 {
		ctx, err := argon2ctx.NewContext(params.Argon2MemoryCost, params.Argon2TimeCost, params.Argon2Parallelism)
		if err != nil {
			pool.Close()
			return nil, ruleError(ErrBadConfig, err.Error())
		}
		argon2Ctx = ctx
	}

	services = &Services{Pool: pool, Argon2: argon2Ctx}
	servicesRefs = 1
	return services, nil
}

// DestroyServices decrements the global Services reference count, tearing
// down the pool once the last caller releases it.
func DestroyServices() {
	servicesMu.Lock()
	defer servicesMu.Unlock()

	if services == nil {
		return
	}
	servicesRefs--
	if servicesRefs > 0 {
		return
	}
	services.Pool.Close()
	services = nil
}
