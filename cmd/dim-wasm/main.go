//go:build wasip1

// Command dim-wasm builds the WebAssembly form of the engine:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o dim.wasm ./cmd/dim-wasm
//
// The exports mirror the C ABI: byte-counted buffers in linear memory,
// results allocated by the module and released with dim_free. A single
// implicit engine backs every call.
package main

import (
	"fmt"
	"os"
	"unsafe"

	dim "github.com/Jerell/dim"
)

var engine = dim.New()

// allocs pins buffers handed across the boundary so the GC keeps them
// alive until dim_free.
var allocs = map[uintptr][]byte{}

func pin(buf []byte) uint32 {
	if len(buf) == 0 {
		buf = make([]byte, 1)
	}
	p := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	allocs[p] = buf
	return uint32(p)
}

func memBytes(ptr, n uint32) []byte {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(uintptr(ptr))), n)
}

func putU32(ptr uint32, v uint32) {
	*(*uint32)(unsafe.Pointer(uintptr(ptr))) = v
}

//go:wasmexport dim_eval
func dimEval(inPtr, inLen, outPtrPtr, outLenPtr uint32) int32 {
	src := string(memBytes(inPtr, inLen))
	out, err := engine.Eval(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	buf := []byte(out)
	putU32(outPtrPtr, pin(buf))
	putU32(outLenPtr, uint32(len(buf)))
	return 0
}

//go:wasmexport dim_define
func dimDefine(namePtr, nameLen, exprPtr, exprLen uint32) int32 {
	name := string(memBytes(namePtr, nameLen))
	expr := string(memBytes(exprPtr, exprLen))
	if err := engine.Define(name, expr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

//go:wasmexport dim_clear
func dimClear(namePtr, nameLen uint32) {
	engine.Clear(string(memBytes(namePtr, nameLen)))
}

//go:wasmexport dim_clear_all
func dimClearAll() {
	engine.ClearAll()
}

//go:wasmexport dim_alloc
func dimAlloc(n uint32) uint32 {
	return pin(make([]byte, n))
}

//go:wasmexport dim_free
func dimFree(ptr, n uint32) {
	_ = n
	delete(allocs, uintptr(ptr))
}

func main() {}
