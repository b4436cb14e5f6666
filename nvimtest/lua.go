package nvimtest

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// luaRunner evaluates Lua chunks for ExecLua on an embedded
// interpreter. Access is serialized by the host's state lock.
type luaRunner struct {
	state *lua.LState
}

func newLuaRunner() *luaRunner {
	return &luaRunner{state: lua.NewState()}
}

func (r *luaRunner) close() {
	r.state.Close()
}

// eval compiles code as a vararg chunk, calls it with args, and
// returns the chunk's first result converted to a Go value.
func (r *luaRunner) eval(code string, args ...any) (any, error) {
	L := r.state
	fn, err := L.LoadString(code)
	if err != nil {
		return nil, fmt.Errorf("nvimtest: load lua chunk: %w", err)
	}

	top := L.GetTop()
	L.Push(fn)
	for _, arg := range args {
		L.Push(toLua(L, arg))
	}
	if err := L.PCall(len(args), lua.MultRet, nil); err != nil {
		L.SetTop(top)
		return nil, fmt.Errorf("nvimtest: lua: %w", err)
	}

	nret := L.GetTop() - top
	if nret <= 0 {
		return nil, nil
	}
	result := toGo(L.Get(top + 1))
	L.SetTop(top)
	return result, nil
}

// ExecLua evaluates a Lua chunk with args available as ... and returns
// its first result.
func (h *Host) ExecLua(code string, args ...any) (any, error) {
	if err := h.guard(); err != nil {
		return nil, err
	}
	defer h.mu.Unlock()
	h.luaOnce.Do(func() { h.lua = newLuaRunner() })
	return h.lua.eval(code, args...)
}

// toGo converts a Lua value to a Go value. Tables with contiguous
// 1-based integer keys become slices, other tables become maps, and
// circular references collapse to nil.
func toGo(lv lua.LValue) any {
	return toGoVisited(lv, make(map[*lua.LTable]bool))
}

func toGoVisited(lv lua.LValue, visited map[*lua.LTable]bool) any {
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
		return tableToGo(v, visited)
	case *lua.LUserData:
		return v.Value
	default:
		return nil
	}
}

func tableToGo(t *lua.LTable, visited map[*lua.LTable]bool) any {
	isArray := true
	maxN := 0
	count := 0
	t.ForEach(func(k, _ lua.LValue) {
		count++
		kn, ok := k.(lua.LNumber)
		if !ok || float64(int(kn)) != float64(kn) || int(kn) <= 0 {
			isArray = false
			return
		}
		if int(kn) > maxN {
			maxN = int(kn)
		}
	})
	if isArray && maxN > 0 && count == maxN {
		arr := make([]any, maxN)
		for i := 1; i <= maxN; i++ {
			arr[i-1] = toGoVisited(t.RawGetInt(i), visited)
		}
		return arr
	}

	m := make(map[string]any, count)
	t.ForEach(func(k, v lua.LValue) {
		var key string
		switch kv := k.(type) {
		case lua.LString:
			key = string(kv)
		case lua.LNumber:
			key = fmt.Sprintf("%v", float64(kv))
		default:
			key = k.String()
		}
		m[key] = toGoVisited(v, visited)
	})
	return m
}

// toLua converts a Go value to a Lua value. Unsupported types become
// userdata.
func toLua(L *lua.LState, v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(val)
	case int:
		return lua.LNumber(val)
	case int32:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case float32:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case string:
		return lua.LString(val)
	case []byte:
		return lua.LString(val)
	case []any:
		t := L.NewTable()
		for i, e := range val {
			t.RawSetInt(i+1, toLua(L, e))
		}
		return t
	case []string:
		t := L.NewTable()
		for i, e := range val {
			t.RawSetInt(i+1, lua.LString(e))
		}
		return t
	case []int:
		t := L.NewTable()
		for i, e := range val {
			t.RawSetInt(i+1, lua.LNumber(e))
		}
		return t
	case map[string]any:
		t := L.NewTable()
		for k, e := range val {
			t.RawSetString(k, toLua(L, e))
		}
		return t
	case map[string]string:
		t := L.NewTable()
		for k, e := range val {
			t.RawSetString(k, lua.LString(e))
		}
		return t
	case lua.LValue:
		return val
	default:
		ud := L.NewUserData()
		ud.Value = v
		return ud
	}
}
