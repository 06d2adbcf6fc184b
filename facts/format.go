package facts

import (
	"fmt"
	"strconv"
)

// GHz converts a frequency in Hz to GHz.
func GHz(hz uint64) float64 { return float64(hz) / 1e9 }

// FormatCPU renders "{model} ({cores}) @ {GHz}GHz", leaving out the parts
// that are nil.
func FormatCPU(model string, cores *int, hz *uint64) string {
	s := model
	if cores != nil {
		s += " (" + strconv.Itoa(*cores) + ")"
	}
	if hz != nil {
		s += " @ " + FormatFrequency(*hz)
	}
	return s
}

func FormatFrequency(hz uint64) string {
	return fmt.Sprintf("%.3fGHz", GHz(hz))
}

// FormatMemory renders used and total kB as truncated MB.
func FormatMemory(usedKB, totalKB uint64) string {
	return fmt.Sprintf("%d MB / %d MB", usedKB/1000, totalKB/1000)
}

// Value returns the display string of a fact, or false if it is absent.
func (f Facts) Value(name Name) (string, bool) {
	switch name {
	case NameUser:
		return deref(f.UserAtHost)
	case NameOS:
		return deref(f.OS)
	case NameHost:
		return deref(f.Host)
	case NameKernel:
		return deref(f.Kernel)
	case NameUptime:
		return deref(f.Uptime)
	case NameGPU:
		return deref(f.GPU)
	case NameCPU:
		if f.CPUModel == nil {
			return "", false
		}
		return FormatCPU(*f.CPUModel, f.CPUCores, f.CPUFrequencyHz), true
	case NameFrequency:
		if f.CPUFrequencyHz == nil {
			return "", false
		}
		return FormatFrequency(*f.CPUFrequencyHz), true
	case NameMemory:
		if f.MemoryUsedKB == nil || f.MemoryTotalKB == nil {
			return "", false
		}
		return FormatMemory(*f.MemoryUsedKB, *f.MemoryTotalKB), true
	}
	return "", false
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
