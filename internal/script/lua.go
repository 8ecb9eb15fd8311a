package script

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/motion/internal/command"
	"github.com/dshills/motion/internal/dispatcher/handler"
	"github.com/dshills/motion/internal/engine/text"
	"github.com/dshills/motion/internal/host"
	"github.com/dshills/motion/internal/protocol"
)

// DefaultExecutionTimeout bounds a single Lua run.
const DefaultExecutionTimeout = 5 * time.Second

// ModuleName is the global table holding the command functions.
const ModuleName = "motion"

// Lua runs Lua scripts against a host.
//
// gopher-lua states are not goroutine-safe; Run serializes callers.
type Lua struct {
	mu sync.Mutex
	L  *lua.LState

	runner  *Runner
	timeout time.Duration
	output  io.Writer
	closed  bool

	// Set for the duration of Run.
	ctx     context.Context
	host    host.Host
	results []handler.Result
}

// LuaOption configures a Lua engine.
type LuaOption func(*Lua)

// WithExecutionTimeout sets the timeout of each Run. Zero disables it.
func WithExecutionTimeout(d time.Duration) LuaOption {
	return func(e *Lua) {
		e.timeout = d
	}
}

// WithOutput redirects print. By default print output is discarded.
func WithOutput(w io.Writer) LuaOption {
	return func(e *Lua) {
		e.output = w
	}
}

// NewLua creates a sandboxed Lua engine bound to runner's dispatcher.
func NewLua(runner *Runner, opts ...LuaOption) *Lua {
	e := &Lua{
		runner:  runner,
		timeout: DefaultExecutionTimeout,
		output:  io.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(e.L)
	e.installSandbox()
	e.installModule()
	return e
}

// openSafeLibraries opens the base, table, string and math libraries only.
// io, os, debug and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

func (e *Lua) installSandbox() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		e.L.SetGlobal(name, lua.LNil)
	}

	e.L.SetGlobal("print", e.L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		fmt.Fprintln(e.output, strings.Join(parts, "\t"))
		return 0
	}))
}

// Run executes code against h and returns the result of every command the
// script issued. A failing command raises a Lua error, which ends the run
// unless the script catches it with pcall.
func (e *Lua) Run(ctx context.Context, h host.Host, code string) ([]handler.Result, error) {
	return e.run(ctx, h, func(L *lua.LState) error {
		return L.DoString(code)
	})
}

// RunFile executes the Lua file at path against h.
func (e *Lua) RunFile(ctx context.Context, h host.Host, path string) ([]handler.Result, error) {
	return e.run(ctx, h, func(L *lua.LState) error {
		return L.DoFile(path)
	})
}

func (e *Lua) run(ctx context.Context, h host.Host, fn func(*lua.LState) error) (results []handler.Result, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrStateClosed
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	e.ctx, e.host, e.results = ctx, h, nil
	e.L.SetContext(ctx)
	defer func() {
		e.L.RemoveContext()
		e.ctx, e.host = nil, nil
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
		results = e.results
	}()

	return nil, fn(e.L)
}

// Close releases the Lua state.
func (e *Lua) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	e.L.Close()
	return nil
}

func (e *Lua) installModule() {
	mod := e.L.SetFuncs(e.L.NewTable(), map[string]lua.LGFunction{
		"run":            e.luaRun,
		"move":           e.movementFunc(command.KindMove),
		"select":         e.movementFunc(command.KindSelect),
		"delete":         e.movementFunc(command.KindDelete),
		"copy":           e.movementFunc(command.KindCopy),
		"cursor":         e.luaCursor,
		"increment":      e.simpleFunc(command.KindIncrement),
		"decrement":      e.simpleFunc(command.KindDecrement),
		"commands":       e.luaCommands,
		"selections":     e.luaSelections,
		"set_selections": e.luaSetSelections,
		"line_count":     e.luaLineCount,
		"line":           e.luaLine,
		"version":        e.luaVersion,
	})
	e.L.SetGlobal(ModuleName, mod)
}

// execute runs req and pushes its selections. It raises a Lua error when the
// command fails.
func (e *Lua) execute(L *lua.LState, req command.Request) int {
	res := e.runner.Dispatcher().Execute(e.ctx, e.host, req)
	e.results = append(e.results, res)
	if res.IsError() {
		L.RaiseError("%s: %v", req.Command, res.Error)
		return 0
	}
	if res.Selections == nil {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(selectionsToTable(L, res.Selections))
	return 1
}

func (e *Lua) luaRun(L *lua.LState) int {
	req, err := requestFromTable(L.CheckTable(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	return e.execute(L, req)
}

func (e *Lua) movementFunc(kind command.Kind) lua.LGFunction {
	return func(L *lua.LState) int {
		data, err := json.Marshal(tableToGo(L.CheckTable(1)))
		if err != nil {
			L.ArgError(1, err.Error())
			return 0
		}
		m, err := protocol.ParseMovement(data)
		if err != nil {
			L.ArgError(1, err.Error())
			return 0
		}
		return e.execute(L, command.Request{Command: kind, Movement: &m})
	}
}

func (e *Lua) simpleFunc(kind command.Kind) lua.LGFunction {
	return func(L *lua.LState) int {
		return e.execute(L, command.Request{Command: kind})
	}
}

func (e *Lua) luaCursor(L *lua.LState) int {
	indices := L.CheckTable(1)
	action, err := requestFromTable(L.CheckTable(2))
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}

	var cursors []int
	for i := 1; i <= indices.Len(); i++ {
		n, ok := indices.RawGetInt(i).(lua.LNumber)
		if !ok {
			L.ArgError(1, "cursor indices must be numbers")
			return 0
		}
		cursors = append(cursors, int(n))
	}
	return e.execute(L, command.Cursor(cursors, action))
}

func (e *Lua) luaCommands(L *lua.LState) int {
	var cmds []command.HostCommand
	for i := 1; i <= L.GetTop(); i++ {
		switch v := L.Get(i).(type) {
		case lua.LString:
			cmds = append(cmds, command.HostCommand{Name: string(v)})
		case *lua.LTable:
			hc := command.HostCommand{Name: lua.LVAsString(v.RawGetString("command"))}
			if args, ok := v.RawGetString("args").(*lua.LTable); ok {
				hc.Args, _ = tableToGo(args).(map[string]any)
			}
			cmds = append(cmds, hc)
		default:
			L.ArgError(i, "command must be a string or table")
			return 0
		}
	}
	return e.execute(L, command.Commands(cmds...))
}

func (e *Lua) luaSelections(L *lua.LState) int {
	L.Push(selectionsToTable(L, e.host.Selections()))
	return 1
}

func (e *Lua) luaSetSelections(L *lua.LState) int {
	tbl := L.CheckTable(1)
	var sels []text.Selection
	for i := 1; i <= tbl.Len(); i++ {
		s, ok := tbl.RawGetInt(i).(*lua.LTable)
		if !ok {
			L.ArgError(1, "selections must be tables")
			return 0
		}
		sels = append(sels, text.Selection{
			Anchor: positionFromTable(s.RawGetString("anchor")),
			Active: positionFromTable(s.RawGetString("active")),
		})
	}
	e.host.SetSelections(sels)
	return 0
}

func (e *Lua) luaLineCount(L *lua.LState) int {
	L.Push(lua.LNumber(e.host.LineCount()))
	return 1
}

func (e *Lua) luaLine(L *lua.LState) int {
	L.Push(lua.LString(e.host.LineText(L.CheckInt(1))))
	return 1
}

func (e *Lua) luaVersion(L *lua.LState) int {
	L.Push(lua.LNumber(e.host.Version()))
	return 1
}

func requestFromTable(t *lua.LTable) (command.Request, error) {
	data, err := json.Marshal(tableToGo(t))
	if err != nil {
		return command.Request{}, err
	}
	return protocol.ParseRequest(data)
}

func selectionsToTable(L *lua.LState, sels []text.Selection) *lua.LTable {
	tbl := L.CreateTable(len(sels), 0)
	for _, s := range sels {
		st := L.CreateTable(0, 2)
		st.RawSetString("anchor", positionToTable(L, s.Anchor))
		st.RawSetString("active", positionToTable(L, s.Active))
		tbl.Append(st)
	}
	return tbl
}

func positionToTable(L *lua.LState, p text.Position) *lua.LTable {
	t := L.CreateTable(0, 2)
	t.RawSetString("line", lua.LNumber(p.Line))
	t.RawSetString("character", lua.LNumber(p.Character))
	return t
}

func positionFromTable(v lua.LValue) text.Position {
	t, ok := v.(*lua.LTable)
	if !ok {
		return text.Position{}
	}
	return text.Position{
		Line:      int(lua.LVAsNumber(t.RawGetString("line"))),
		Character: int(lua.LVAsNumber(t.RawGetString("character"))),
	}
}

// tableToGo converts a Lua value to plain Go values for JSON encoding.
// Tables with keys 1..n become slices; other tables become maps with string
// keys. Cycles are cut.
func tableToGo(lv lua.LValue) any {
	return toGo(lv, make(map[*lua.LTable]bool))
}

func toGo(lv lua.LValue, visited map[*lua.LTable]bool) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LTable:
		if visited[v] {
			return nil
		}
		visited[v] = true
		defer delete(visited, v)

		if n := v.Len(); n > 0 && isSequence(v, n) {
			out := make([]any, 0, n)
			for i := 1; i <= n; i++ {
				out = append(out, toGo(v.RawGetInt(i), visited))
			}
			return out
		}
		out := make(map[string]any)
		v.ForEach(func(k, val lua.LValue) {
			out[k.String()] = toGo(val, visited)
		})
		return out
	default:
		return nil
	}
}

func isSequence(t *lua.LTable, n int) bool {
	count := 0
	t.ForEach(func(lua.LValue, lua.LValue) {
		count++
	})
	return count == n
}
