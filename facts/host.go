package facts

import (
	"context"
	"strings"
	"sync"

	"github.com/zcalusic/sysinfo"
)

var (
	si     sysinfo.SysInfo
	siOnce sync.Once
)

// gatherSysInfo reads DMI and friends at most once per process.
func gatherSysInfo() sysinfo.SysInfo {
	siOnce.Do(si.GetSysInfo)
	return si
}

// Host returns the hardware vendor and product name.
func (c *Collector) Host(ctx context.Context) (string, error) {
	getInfo := c.SysInfo
	if getInfo == nil {
		getInfo = gatherSysInfo
	}
	c.log(NameHost).Debugf("reading DMI product info")
	info := getInfo()

	var parts []string
	for _, s := range []string{info.Product.Vendor, info.Product.Name} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "", errorf(NameHost, ErrNotFound, "no DMI product information")
	}
	return strings.Join(parts, " "), nil
}
