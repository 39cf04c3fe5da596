// Package filter implements the numeric kernels behind the public
// filter API: Gaussian kernel synthesis, separable convolution, Sobel
// gradients, Lanczos resampling, and per-pixel mapping.
package filter

import (
	"math"
	"sync"
)

// GaussianKernel generates a normalized 1D Gaussian kernel for the given
// standard deviation. The radius is ceil(3*sigma), covering 99.7% of the
// distribution, so the kernel length is 2*ceil(3*sigma)+1 and the
// weights sum to 1.0.
//
// Callers validate sigma before synthesis; for sigma <= 0 the function
// returns the single-element identity kernel [1.0].
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1.0}
	}

	radius := int(math.Ceil(sigma * 3))
	size := radius*2 + 1

	kernel := make([]float32, size)

	// G(x) = exp(-x²/(2σ²)); the 1/(σ√(2π)) constant cancels in the
	// normalization below.
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for i := 0; i < size; i++ {
		x := float64(i - radius)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	invSum := float32(1.0 / sum)
	for i := range kernel {
		kernel[i] *= invSum
	}

	return kernel
}

// KernelRadius returns the half-length ceil(3*sigma) of the kernel
// GaussianKernel would synthesize for sigma.
func KernelRadius(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}

// kernelCache caches computed Gaussian kernels to avoid recomputation
// when the same sigma is used repeatedly (e.g. Sharpen always blurs with
// sigma 1.0). Key is sigma quantized to 0.01 precision.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float32
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

// newKernelCache creates a kernel cache with the given maximum entries.
func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float32),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it. The
// kernel is synthesized from the quantized sigma, not the exact one, so
// the result for a given sigma never depends on which nearby sigma
// populated the cache first.
func (c *kernelCache) get(sigma float64) []float32 {
	key := int(math.Round(sigma * 100))

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(float64(key) / 100)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Simple eviction: drop half the entries.
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// CachedGaussianKernel returns a cached Gaussian kernel for sigma.
// Sigma is quantized to 0.01 steps, so sigmas closer together than that
// share one kernel. Cached kernels are shared; callers must not modify
// the returned slice.
func CachedGaussianKernel(sigma float64) []float32 {
	return defaultKernelCache.get(sigma)
}
