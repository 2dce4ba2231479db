package main

// Command seg2d-cshared exposes the api package across a C ABI.  Build
// with
//
//	go build -buildmode=c-shared -o libseg2d.so github.com/grailbio/seg2d/cmd/seg2d-cshared
//
// Every function returns an api.Result as int32; OUT parameters are
// written only on Success.

/*
#include <stdint.h>

// seg2i16 is a packed record of four 16-bit signed integers, 8 bytes,
// naturally aligned to 2 bytes.  This layout is part of the ABI.
typedef struct {
	int16_t x1;
	int16_t y1;
	int16_t x2;
	int16_t y2;
} seg2i16;
*/
import "C"

import (
	"unsafe"

	"github.com/grailbio/seg2d/api"
	"github.com/grailbio/seg2d/segment"
)

// maxSliceElem bounds the fake array type used to reinterpret C
// pointers as Go slices.
const maxSliceElem = 1 << 28

func segSlice(p unsafe.Pointer, n C.int32_t) []segment.Seg {
	if p == nil || n <= 0 {
		return nil
	}
	return (*[maxSliceElem]segment.Seg)(p)[:n:n]
}

func byteSlice(p unsafe.Pointer, n C.int32_t) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	return (*[maxSliceElem]byte)(p)[:n:n]
}

//export GetVersion
func GetVersion(version *C.int32_t) C.int32_t {
	*version = C.int32_t(api.GetVersion())
	return C.int32_t(api.Success)
}

//export LoadPrequeryAnySegmentIntersections
func LoadPrequeryAnySegmentIntersections(barriers *C.seg2i16, numBarriers C.int32_t, handle *C.uint64_t) C.int32_t {
	h, result := api.LoadPrequeryAnySegmentIntersections(segSlice(unsafe.Pointer(barriers), numBarriers))
	if result == api.Success {
		*handle = C.uint64_t(h)
	}
	return C.int32_t(result)
}

//export QueryAnySegmentIntersections
func QueryAnySegmentIntersections(handle C.uint64_t, queries *C.seg2i16, numQueries C.int32_t, results *C.uint8_t) C.int32_t {
	result := api.QueryAnySegmentIntersections(
		api.Handle(handle),
		segSlice(unsafe.Pointer(queries), numQueries),
		byteSlice(unsafe.Pointer(results), numQueries))
	return C.int32_t(result)
}

//export FreePrequeryAnySegmentIntersections
func FreePrequeryAnySegmentIntersections(handle C.uint64_t) C.int32_t {
	return C.int32_t(api.FreePrequeryAnySegmentIntersections(api.Handle(handle)))
}

func main() {}
