package cli

import "github.com/cwbudde/algo-vecmath/cpu"

// hostInfo describes the machine the summary is printed on. The tick
// counts come from a different run, possibly elsewhere.
type hostInfo struct {
	Arch string   `yaml:"arch"`
	SIMD []string `yaml:"simd"`
}

var simdLevels = []cpu.SIMDLevel{
	cpu.SIMDSSE2,
	cpu.SIMDAVX,
	cpu.SIMDAVX2,
	cpu.SIMDAVX512,
	cpu.SIMDNEON,
}

func detectHost() hostInfo {
	f := cpu.DetectFeatures()
	h := hostInfo{Arch: f.Architecture}
	for _, lvl := range simdLevels {
		if cpu.Supports(f, lvl) {
			h.SIMD = append(h.SIMD, lvl.String())
		}
	}
	return h
}
