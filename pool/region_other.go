//go:build !linux && !darwin

package pool

// reserveRegion obtains the pool as a heap slice on platforms where the
// anonymous-mapping path isn't used. Release is the collector's job.
func reserveRegion(size int64) ([]byte, error) {
	return make([]byte, size), nil
}

func releaseRegion(_ []byte) error {
	return nil
}
