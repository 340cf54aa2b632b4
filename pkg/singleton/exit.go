/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package singleton

import (
	"sync"
)

var (
	exitMux   sync.Mutex
	exitHooks []func()
)

// AtExit registers fn to be called by RunExitHooks. Hooks run in reverse
// order of registration.
func AtExit(fn func()) {
	if fn == nil {
		return
	}

	exitMux.Lock()
	exitHooks = append(exitHooks, fn)
	exitMux.Unlock()
}

// RunExitHooks runs and forgets every registered hook. The program is
// expected to defer it from main, and to call it before os.Exit.
func RunExitHooks() {
	exitMux.Lock()
	hooks := exitHooks
	exitHooks = nil
	exitMux.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}
}
