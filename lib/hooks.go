package ircname

import (
	"sync"
)

type HookEmitter struct {
	sync.RWMutex
	Registered map[string][]func(interface{})
}

func MakeHookEmitter() *HookEmitter {
	return &HookEmitter{
		Registered: make(map[string][]func(interface{})),
	}
}

func (hooks *HookEmitter) Dispatch(hookName string, data interface{}) {
	if hooks == nil {
		return
	}

	hooks.RLock()
	callbacks := hooks.Registered[hookName]
	hooks.RUnlock()

	for _, p := range callbacks {
		p(data)
	}
}

func (hooks *HookEmitter) Register(hookName string, p func(interface{})) {
	hooks.Lock()
	defer hooks.Unlock()

	hooks.Registered[hookName] = append(hooks.Registered[hookName], p)
}

var HookNameReservedName = "name.reserved"

type HookNameReserved struct {
	Reservation *Reservation
}

var HookNameReleasedName = "name.released"

type HookNameReleased struct {
	Name Nickname
}
