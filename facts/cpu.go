package facts

import (
	"context"
	"io/fs"
	"sort"
	"strconv"
	"strings"
)

// CPUInfo is what CPU found. Either field may be nil.
type CPUInfo struct {
	Model *string
	Cores *int
}

// CPU reads the model name and core count of the first processor listed in
// the CPU info pseudo-file.
func (c *Collector) CPU(ctx context.Context) (CPUInfo, error) {
	var info CPUInfo
	p := relPath(c.Sources.CPUInfo)
	c.log(NameCPU).Debugf("reading %s", p)

	f, err := c.FS.Open(p)
	if err != nil {
		return info, newError(NameCPU, ErrIO, err)
	}
	defer f.Close()

	res, err := scanFields(f, ":", "model name", "cpu cores")
	if err != nil {
		return info, newError(NameCPU, ErrIO, err)
	}

	var firstErr error
	if model, err := res.get(NameCPU, p, "model name"); err != nil {
		firstErr = err
	} else {
		info.Model = &model
	}

	cores, err := res.get(NameCPU, p, "cpu cores")
	if err == nil {
		var n int
		n, err = strconv.Atoi(cores)
		if err != nil {
			err = newError(NameCPU, ErrParse, err)
		} else {
			info.Cores = &n
		}
	}
	if firstErr == nil {
		firstErr = err
	}
	return info, firstErr
}

// Frequency returns the BIOS-limited clock of the first CPU in Hz. The
// pseudo-file holds a single integer in kHz.
func (c *Collector) Frequency(ctx context.Context) (uint64, error) {
	p, err := c.frequencySource()
	if err != nil {
		return 0, err
	}
	c.log(NameFrequency).Debugf("reading %s", p)

	b, err := fs.ReadFile(c.FS, p)
	if err != nil {
		return 0, newError(NameFrequency, ErrIO, err)
	}
	khz, err := strconv.ParseUint(strings.TrimSpace(string(b)), 10, 64)
	if err != nil {
		return 0, newError(NameFrequency, ErrParse, err)
	}
	return khz * 1000, nil
}

func (c *Collector) frequencySource() (string, error) {
	var tried []string
	for _, pat := range c.Sources.Frequency {
		pat = relPath(pat)
		matches, err := fs.Glob(c.FS, pat)
		if err != nil {
			return "", errorf(NameFrequency, ErrParse, "bad pattern %q: %v", pat, err)
		}
		if len(matches) > 0 {
			sort.Strings(matches)
			return matches[0], nil
		}
		tried = append(tried, pat)
	}
	return "", newError(NameFrequency, ErrIO, &fs.PathError{
		Op:   "open",
		Path: strings.Join(tried, ", "),
		Err:  fs.ErrNotExist,
	})
}

func relPath(p string) string {
	p = strings.TrimLeft(p, "/")
	if p == "" {
		return "."
	}
	return p
}
