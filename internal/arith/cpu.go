package arith

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUFeatures records the instruction-set extensions relevant to limb
// arithmetic. Calibration profiles carry it as part of their provenance so
// that thresholds measured on one micro-architecture are recognisable.
type CPUFeatures struct {
	GOARCH string
	// BMI2 provides MULX (flag-free 64x64→128 multiply).
	BMI2 bool
	// ADX provides ADCX/ADOX (dual carry chains).
	ADX bool
	// AVX2 and AVX512 indicate wide vector units.
	AVX2   bool
	AVX512 bool
	// ASIMD is the arm64 vector extension.
	ASIMD bool
}

// DetectCPUFeatures probes the running CPU.
func DetectCPUFeatures() CPUFeatures {
	return CPUFeatures{
		GOARCH: runtime.GOARCH,
		BMI2:   cpu.X86.HasBMI2,
		ADX:    cpu.X86.HasADX,
		AVX2:   cpu.X86.HasAVX2,
		AVX512: cpu.X86.HasAVX512F,
		ASIMD:  cpu.ARM64.HasASIMD,
	}
}

// String returns a compact description such as "amd64[bmi2,adx,avx2]".
func (f CPUFeatures) String() string {
	var names []string
	for _, feat := range []struct {
		on   bool
		name string
	}{
		{f.BMI2, "bmi2"},
		{f.ADX, "adx"},
		{f.AVX2, "avx2"},
		{f.AVX512, "avx512"},
		{f.ASIMD, "asimd"},
	} {
		if feat.on {
			names = append(names, feat.name)
		}
	}
	return f.GOARCH + "[" + strings.Join(names, ",") + "]"
}
