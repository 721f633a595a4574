package common

// WipeByteArray zeroes the buffer in place. The CLI uses it to scrub
// password bytes once they have been handed to the session store.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
