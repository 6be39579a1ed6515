//go:build linux || darwin

package pool

import "golang.org/x/sys/unix"

// reserveRegion obtains the pool as an anonymous private mapping, so the
// region comes from the host in one piece and is returned in one piece.
// The mapping is zero-filled by the kernel.
func reserveRegion(size int64) ([]byte, error) {
	return unix.Mmap(
		-1,
		0,
		int(size),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON,
	)
}

func releaseRegion(b []byte) error {
	return unix.Munmap(b)
}
