package varpool

import "reflect"
import "unsafe"

// sliceOver overlays a []byte on top of n bytes starting at ptr,
// without copying. Mirrors memalloc's own pointer-to-slice helper;
// kept package-local since that helper is unexported.
func sliceOver(ptr unsafe.Pointer, n int64) []byte {
	var dst []byte
	sh := (*reflect.SliceHeader)(unsafe.Pointer(&dst))
	sh.Data = uintptr(ptr)
	sh.Len = int(n)
	sh.Cap = int(n)
	return dst
}
