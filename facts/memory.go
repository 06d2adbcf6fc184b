package facts

import (
	"context"
	"strconv"
	"strings"
)

// Memory is the memory usage in kilobytes.
type Memory struct {
	UsedKB  uint64
	TotalKB uint64
}

// Memory reads MemTotal and MemAvailable from the memory info pseudo-file.
// Used memory is the total minus what's available.
func (c *Collector) Memory(ctx context.Context) (Memory, error) {
	var mem Memory
	p := relPath(c.Sources.MemInfo)
	c.log(NameMemory).Debugf("reading %s", p)

	f, err := c.FS.Open(p)
	if err != nil {
		return mem, newError(NameMemory, ErrIO, err)
	}
	defer f.Close()

	res, err := scanFields(f, ":", "MemTotal", "MemAvailable")
	if err != nil {
		return mem, newError(NameMemory, ErrIO, err)
	}

	total, err := res.getKB(p, "MemTotal")
	if err != nil {
		return mem, err
	}
	avail, err := res.getKB(p, "MemAvailable")
	if err != nil {
		return mem, err
	}
	if avail > total {
		return mem, errorf(NameMemory, ErrParse, "%s: MemAvailable (%d kB) exceeds MemTotal (%d kB)", p, avail, total)
	}

	mem.TotalKB = total
	mem.UsedKB = total - avail
	return mem, nil
}

// getKB parses values of the form "16000000 kB".
func (res scanResult) getKB(source, marker string) (uint64, error) {
	v, err := res.get(NameMemory, source, marker)
	if err != nil {
		return 0, err
	}
	if !strings.HasSuffix(v, "kB") {
		return 0, errorf(NameMemory, ErrParse, "%s: %s value %q has no kB unit", source, marker, v)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(strings.TrimSuffix(v, "kB")), 10, 64)
	if err != nil {
		return 0, newError(NameMemory, ErrParse, err)
	}
	return n, nil
}
