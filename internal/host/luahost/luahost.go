// SPDX-License-Identifier: AGPL-3.0-or-later

// Package luahost implements host.Host by calling global functions defined
// in a Lua host script.
//
// A host script must define:
//
//	select_by_name(name)
//	current_selection_name()   -> string or nil
//	actor_is_busy()            -> boolean
//	ability_readiness(action)  -> true, false or nil when unknown
//	action_cost(action)        -> number or nil when unknown
//	actor_resource_pool()      -> number
//	actor_knows_action(action) -> boolean
//	issue_action(action)       -- raise an error or return false to fail
//
// Scripts can call castrun.log(msg) and castrun.clock(), which returns
// milliseconds since the host was created.
package luahost

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Shopify/go-lua"

	"github.com/bartekus/castrun/internal/host"
)

var requiredFunctions = []string{
	"select_by_name",
	"current_selection_name",
	"actor_is_busy",
	"ability_readiness",
	"action_cost",
	"actor_resource_pool",
	"actor_knows_action",
	"issue_action",
}

// Host is a host.Host backed by a Lua state. Like the state it wraps, it
// must only be used from one goroutine.
type Host struct {
	state  *lua.State
	logger *slog.Logger
	start  time.Time
}

var _ host.Host = (*Host)(nil)

// New creates a host with the standard libraries and the castrun table
// loaded but no host script yet.
func New(logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Host{
		state:  lua.NewState(),
		logger: logger,
		start:  time.Now(),
	}
	lua.OpenLibraries(h.state)
	h.registerCastrunTable()
	return h
}

// Load runs the host script at path and checks it defines every required function.
func (h *Host) Load(path string) error {
	if err := lua.DoFile(h.state, path); err != nil {
		return fmt.Errorf("loading host script %s: %w", path, err)
	}
	return h.checkFunctions()
}

// LoadString is Load for an in-memory script.
func (h *Host) LoadString(src string) error {
	if err := lua.DoString(h.state, src); err != nil {
		return fmt.Errorf("loading host script: %w", err)
	}
	return h.checkFunctions()
}

func (h *Host) checkFunctions() error {
	l := h.state
	var missing []string
	for _, name := range requiredFunctions {
		l.Global(name)
		if !l.IsFunction(-1) {
			missing = append(missing, name)
		}
		l.Pop(1)
	}
	if len(missing) > 0 {
		return fmt.Errorf("host script does not define: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (h *Host) registerCastrunTable() {
	l := h.state
	l.NewTable()
	lua.SetFunctions(l, []lua.RegistryFunction{
		{Name: "log", Function: func(l *lua.State) int {
			h.logger.Info("host script", "text", lua.CheckString(l, 1))
			return 0
		}},
		{Name: "clock", Function: func(l *lua.State) int {
			l.PushNumber(float64(time.Since(h.start).Milliseconds()))
			return 1
		}},
	}, 0)
	l.SetGlobal("castrun")
}

// invoke calls the global fn with string args. When read is non-nil the
// function's single result is on top of the stack while read runs.
func (h *Host) invoke(fn string, read func(l *lua.State), args ...string) error {
	l := h.state
	top := l.Top()
	defer l.SetTop(top)

	l.Global(fn)
	for _, a := range args {
		l.PushString(a)
	}
	results := 0
	if read != nil {
		results = 1
	}
	if err := l.ProtectedCall(len(args), results, 0); err != nil {
		if msg, ok := l.ToString(-1); ok && msg != "" {
			return fmt.Errorf("%s: %s", fn, msg)
		}
		return fmt.Errorf("%s: %w", fn, err)
	}
	if read != nil {
		read(l)
	}
	return nil
}

func (h *Host) queryFailed(fn string, err error) {
	h.logger.Warn("host query failed", "fn", fn, "err", err)
}

func (h *Host) SelectByName(name string) {
	if err := h.invoke("select_by_name", nil, name); err != nil {
		h.queryFailed("select_by_name", err)
	}
}

func (h *Host) CurrentSelectionName() string {
	name := ""
	err := h.invoke("current_selection_name", func(l *lua.State) {
		if l.TypeOf(-1) == lua.TypeString {
			name, _ = l.ToString(-1)
		}
	})
	if err != nil {
		h.queryFailed("current_selection_name", err)
		return ""
	}
	return name
}

// ActorIsBusy reports busy when the script errors, so a broken indicator
// runs into the wait timeout instead of casting over an active action.
func (h *Host) ActorIsBusy() bool {
	busy := true
	err := h.invoke("actor_is_busy", func(l *lua.State) {
		busy = l.ToBoolean(-1)
	})
	if err != nil {
		h.queryFailed("actor_is_busy", err)
		return true
	}
	return busy
}

func (h *Host) AbilityReadiness(action string) host.Readiness {
	r := host.Unknown
	err := h.invoke("ability_readiness", func(l *lua.State) {
		if l.TypeOf(-1) == lua.TypeBoolean {
			r = host.ReadinessOf(l.ToBoolean(-1))
		}
	}, action)
	if err != nil {
		h.queryFailed("ability_readiness", err)
		return host.Unknown
	}
	return r
}

func (h *Host) ActionCost(action string) host.Cost {
	var c host.Cost
	err := h.invoke("action_cost", func(l *lua.State) {
		if l.TypeOf(-1) == lua.TypeNumber {
			v, _ := l.ToNumber(-1)
			c = host.KnownCost(v)
		}
	}, action)
	if err != nil {
		h.queryFailed("action_cost", err)
		return host.Cost{}
	}
	return c
}

func (h *Host) ActorResourcePool() float64 {
	var pool float64
	err := h.invoke("actor_resource_pool", func(l *lua.State) {
		if l.TypeOf(-1) == lua.TypeNumber {
			pool, _ = l.ToNumber(-1)
		}
	})
	if err != nil {
		h.queryFailed("actor_resource_pool", err)
		return 0
	}
	return pool
}

func (h *Host) ActorKnowsAction(action string) bool {
	known := false
	err := h.invoke("actor_knows_action", func(l *lua.State) {
		known = l.ToBoolean(-1)
	}, action)
	if err != nil {
		h.queryFailed("actor_knows_action", err)
		return false
	}
	return known
}

var errIssueRefused = errors.New("issue_action returned false")

func (h *Host) IssueAction(action string) error {
	refused := false
	err := h.invoke("issue_action", func(l *lua.State) {
		refused = l.TypeOf(-1) == lua.TypeBoolean && !l.ToBoolean(-1)
	}, action)
	if err != nil {
		return err
	}
	if refused {
		return errIssueRefused
	}
	return nil
}
