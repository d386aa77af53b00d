package arena

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

// Allocate reserves room for count contiguous values of T and returns a
// handle over them. The memory is not initialized: after a Clear it may
// still hold bytes from the previous generation.
// Returns ok == false, with the arena unchanged, when the remaining capacity
// (alignment padding included) cannot hold the request or count is negative.
// T must be a plain type; see IsPlain.
func Allocate[T any](a *Arena, count int) (Handle[T], bool) {
	mustPlain[T]()
	var zero T
	off, ok := a.reserve(unsafe.Sizeof(zero), unsafe.Alignof(zero), count)
	if !ok {
		return Handle[T]{}, false
	}
	return Handle[T]{arena: a, off: off, n: count, gen: a.generation}, true
}

// Push stores v in the arena and returns a one-element handle to it.
func Push[T any](a *Arena, v T) (Handle[T], bool) {
	h, ok := Allocate[T](a, 1)
	if !ok {
		return h, false
	}
	if unsafe.Sizeof(v) != 0 {
		*h.elem(0) = v
	}
	return h, true
}

// PushSlice copies vs into the arena and returns a handle over the copy.
func PushSlice[T any](a *Arena, vs []T) (Handle[T], bool) {
	h, ok := Allocate[T](a, len(vs))
	if !ok {
		return h, false
	}
	if h.ByteLen() > 0 {
		copy(unsafe.Slice(h.elem(0), len(vs)), vs)
	}
	return h, true
}

// IsPlain reports whether values of T can live in arena memory: booleans,
// numbers, and arrays or structs made only of those. Types holding Go
// pointers (strings, slices, maps, pointers, interfaces, channels, funcs)
// are rejected because the garbage collector does not scan arena bytes.
func IsPlain[T any]() bool {
	return plain(reflect.TypeFor[T]())
}

var plainTypes sync.Map // reflect.Type -> bool

func plain(t reflect.Type) bool {
	if v, ok := plainTypes.Load(t); ok {
		return v.(bool)
	}
	ok := isPlain(t)
	plainTypes.Store(t, ok)
	return ok
}

func isPlain(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || isPlain(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !isPlain(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func mustPlain[T any]() {
	t := reflect.TypeFor[T]()
	if !plain(t) {
		panic(fmt.Sprintf("arena: type %s contains pointers", t))
	}
}
