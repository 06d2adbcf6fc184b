// Package facts manages "facts", which are data gathered from the local
// system: kernel pseudo-files read through an fs.FS, and the output of a few
// external programs.
//
// Every fact is optional. Collecting one never depends on another, and a fact
// that could not be collected is left nil in the Facts record while its error
// is kept in the Report.
package facts

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/zcalusic/sysinfo"

	"github.com/jeffrom/sysfetch/executil"
	"github.com/jeffrom/sysfetch/stdio"
)

// Name identifies a fact.
type Name string

const (
	NameUser      Name = "user"
	NameOS        Name = "os"
	NameHost      Name = "host"
	NameKernel    Name = "kernel"
	NameUptime    Name = "uptime"
	NameCPU       Name = "cpu"
	NameFrequency Name = "frequency"
	NameGPU       Name = "gpu"
	NameMemory    Name = "memory"
)

// AllNames lists every fact in display order.
var AllNames = []Name{
	NameUser,
	NameOS,
	NameHost,
	NameKernel,
	NameUptime,
	NameCPU,
	NameFrequency,
	NameGPU,
	NameMemory,
}

// DefaultNames are the facts shown when none are configured.
var DefaultNames = []Name{
	NameUser,
	NameOS,
	NameKernel,
	NameUptime,
	NameCPU,
	NameGPU,
	NameMemory,
}

var labels = map[Name]string{
	NameUser:      "User",
	NameOS:        "OS",
	NameHost:      "Host",
	NameKernel:    "Kernel",
	NameUptime:    "Uptime",
	NameCPU:       "CPU",
	NameFrequency: "Frequency",
	NameGPU:       "GPU",
	NameMemory:    "Memory",
}

// Label is the text printed in front of the fact's value.
func (n Name) Label() string {
	if l, ok := labels[n]; ok {
		return l
	}
	return string(n)
}

func ParseName(s string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := labels[n]; !ok {
		return "", fmt.Errorf("facts: unknown fact %q", s)
	}
	return n, nil
}

// ParseNames parses a list of fact names, dropping duplicates.
func ParseNames(ss []string) ([]Name, error) {
	seen := make(map[Name]bool)
	var res []Name
	for _, s := range ss {
		n, err := ParseName(s)
		if err != nil {
			return nil, err
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		res = append(res, n)
	}
	return res, nil
}

// Facts is the record of everything gathered in one run. A nil field was not
// requested or could not be collected.
type Facts struct {
	UserAtHost     *string `json:"user_at_host,omitempty"`
	OS             *string `json:"os,omitempty"`
	Host           *string `json:"host,omitempty"`
	Kernel         *string `json:"kernel,omitempty"`
	Uptime         *string `json:"uptime,omitempty"`
	CPUModel       *string `json:"cpu_model,omitempty"`
	CPUCores       *int    `json:"cpu_cores,omitempty"`
	CPUFrequencyHz *uint64 `json:"cpu_frequency_hz,omitempty"`
	GPU            *string `json:"gpu,omitempty"`
	MemoryUsedKB   *uint64 `json:"memory_used_kb,omitempty"`
	MemoryTotalKB  *uint64 `json:"memory_total_kb,omitempty"`
}

// Sources are the pseudo-file paths read by the collector, relative to the
// root of its FS.
type Sources struct {
	CPUInfo string
	MemInfo string

	// Frequency candidates are tried in order; each may be a glob pattern.
	Frequency []string
}

func DefaultSources() Sources {
	return Sources{
		CPUInfo: "proc/cpuinfo",
		MemInfo: "proc/meminfo",
		Frequency: []string{
			"sys/devices/system/cpu/cpu0/cpufreq/bios_limit",
			"sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq",
		},
	}
}

// Commands hold the argv of every external program the collector runs.
type Commands struct {
	Kernel    []string
	Arch      []string
	OSRelease []string
	Uptime    []string
	GPU       []string
	User      []string
	Hostname  []string
}

func DefaultCommands() Commands {
	return Commands{
		Kernel:    []string{"uname", "-r"},
		Arch:      []string{"uname", "-m"},
		OSRelease: []string{"cat", "/etc/os-release"},
		Uptime:    []string{"uptime", "-p"},
		GPU:       []string{"lspci"},
		User:      []string{"whoami"},
		Hostname:  []string{"hostname"},
	}
}

// Collector gathers facts. Its operations are independent and may be called
// in any order.
type Collector struct {
	FS       fs.FS
	Runner   executil.Runner
	Sources  Sources
	Commands Commands

	// SysInfo returns DMI data for the host fact.
	SysInfo func() sysinfo.SysInfo

	IO stdio.StdIO
}

func New(fsys fs.FS, runner executil.Runner) *Collector {
	return &Collector{
		FS:       fsys,
		Runner:   runner,
		Sources:  DefaultSources(),
		Commands: DefaultCommands(),
		SysInfo:  gatherSysInfo,
	}
}

func (c *Collector) log(name Name) stdio.StdIO {
	return c.IO.WithScope("facts", string(name))
}
