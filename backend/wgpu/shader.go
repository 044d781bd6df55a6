//go:build !nogpu

package wgpu

import (
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/paintbind/internal/cache"
)

// Compiled modules are memoized by source. The paint shader contract
// keeps layer shaders identical across binding strategies, so tiles
// sharing a layer layout hit the cache.
var shaderCache = cache.New[string, []uint32](64)

// CompileShader compiles WGSL to SPIR-V words via naga. Layer shaders
// built around the generated paint declarations (see
// paintbind.VertexShaderWGSL) go through here before module creation;
// it doubles as validation of the shader contract for a binder set.
func CompileShader(wgsl string) ([]uint32, error) {
	if words, ok := shaderCache.Get(wgsl); ok {
		return words, nil
	}

	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to compile shader: %w", err)
	}

	// Convert bytes to uint32 words for SPIR-V.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	shaderCache.Set(wgsl, words)
	return words, nil
}
