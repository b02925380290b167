// Package main builds the C-callable form of the engine:
//
//	go build -buildmode=c-shared -o libdim.so ./cshared
//
// The exported surface matches dim.h: byte-counted buffers, no nul
// termination, results allocated by the module and released with dim_free.
// All entry points operate on a single implicit engine; callers that need
// isolation should link the Go package instead and construct their own.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"os"
	"unsafe"

	dim "github.com/Jerell/dim"
)

var engine = dim.New()

func goString(ptr *C.uint8_t, n C.size_t) string {
	if ptr == nil || n == 0 {
		return ""
	}
	return string(C.GoBytes(unsafe.Pointer(ptr), C.int(n)))
}

//export dim_eval
func dim_eval(inPtr *C.uint8_t, inLen C.size_t, outPtr **C.uint8_t, outLen *C.size_t) C.int32_t {
	src := goString(inPtr, inLen)
	out, err := engine.Eval(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	buf := C.CBytes([]byte(out))
	*outPtr = (*C.uint8_t)(buf)
	*outLen = C.size_t(len(out))
	return 0
}

//export dim_define
func dim_define(namePtr *C.uint8_t, nameLen C.size_t, exprPtr *C.uint8_t, exprLen C.size_t) C.int32_t {
	name := goString(namePtr, nameLen)
	expr := goString(exprPtr, exprLen)
	if err := engine.Define(name, expr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

//export dim_clear
func dim_clear(namePtr *C.uint8_t, nameLen C.size_t) {
	engine.Clear(goString(namePtr, nameLen))
}

//export dim_clear_all
func dim_clear_all() {
	engine.ClearAll()
}

//export dim_alloc
func dim_alloc(n C.size_t) *C.uint8_t {
	if n == 0 {
		return nil
	}
	return (*C.uint8_t)(C.malloc(n))
}

//export dim_free
func dim_free(ptr *C.uint8_t, n C.size_t) {
	_ = n
	C.free(unsafe.Pointer(ptr))
}

func main() {}
