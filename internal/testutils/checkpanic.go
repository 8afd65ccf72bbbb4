package testutils

// CheckPanic runs fun and returns whether it panicked. The panic value itself is discarded.
//
// This function is only used in testing.
func CheckPanic(fun func()) (didPanic bool) {
	didPanic = true
	defer func() {
		_ = recover()
	}()
	fun()
	didPanic = false
	return
}

// CheckPanicValue runs fun and returns the value it panicked with (nil if it did not panic).
func CheckPanicValue(fun func()) (panicValue any) {
	defer func() {
		panicValue = recover()
	}()
	fun()
	return
}
