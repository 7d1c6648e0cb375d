//go:build !amd64 && !arm64

package bitwise

func init() {
	// Other architectures keep the portable bisection implementations.
	// math/bits would be correct here too, but without a native count
	// instruction it holds no advantage over the bisection path.
	currentImpl = ImplGeneric
	currentName = "bisection"
}
