package utils

import (
	"unsafe"
)

func CopySlice[T any](s []T) []T {
	sliceCopy := make([]T, len(s))
	copy(sliceCopy, s)

	return sliceCopy
}

func BytesAsString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

func StringAsBytes[T ~string](s T) []byte {
	return unsafe.Slice(unsafe.StringData(string(s)), len(s))
}
