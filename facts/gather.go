package facts

import (
	"context"
	"fmt"
)

// Outcome is the result of one collector operation.
type Outcome struct {
	Name Name
	Err  error
}

// Report is everything Gather collected in one run.
type Report struct {
	Facts    Facts
	Outcomes []Outcome
}

// Err returns the error of the named operation, if it failed.
func (r *Report) Err(name Name) error {
	for _, o := range r.Outcomes {
		if o.Name == name {
			return o.Err
		}
	}
	return nil
}

// Failed returns the outcomes that have an error.
func (r *Report) Failed() []Outcome {
	var res []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			res = append(res, o)
		}
	}
	return res
}

// Gather runs the operations for names sequentially, in order, and writes
// their results into a new Report. The cpu fact also gathers the frequency.
// It stops at the first error policy deems fatal and returns it along with
// the partial report.
func (c *Collector) Gather(ctx context.Context, names []Name, policy Policy) (*Report, error) {
	r := &Report{}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		if err := c.gatherOne(ctx, r, name, policy); err != nil {
			return r, err
		}
	}
	return r, nil
}

func (c *Collector) gatherOne(ctx context.Context, r *Report, name Name, policy Policy) error {
	var err error
	f := &r.Facts
	switch name {
	case NameUser:
		f.UserAtHost, err = optString(c.UserHost(ctx))
	case NameOS:
		f.OS, err = optString(c.OS(ctx))
	case NameHost:
		f.Host, err = optString(c.Host(ctx))
	case NameKernel:
		f.Kernel, err = optString(c.Kernel(ctx))
	case NameUptime:
		f.Uptime, err = optString(c.Uptime(ctx))
	case NameGPU:
		f.GPU, err = optString(c.GPU(ctx))
	case NameCPU:
		var info CPUInfo
		info, err = c.CPU(ctx)
		f.CPUModel, f.CPUCores = info.Model, info.Cores
		if err := c.record(r, NameCPU, err, policy); err != nil {
			return err
		}
		return c.gatherOne(ctx, r, NameFrequency, policy)
	case NameFrequency:
		var hz uint64
		if hz, err = c.Frequency(ctx); err == nil {
			f.CPUFrequencyHz = &hz
		}
	case NameMemory:
		var mem Memory
		if mem, err = c.Memory(ctx); err == nil {
			f.MemoryUsedKB, f.MemoryTotalKB = &mem.UsedKB, &mem.TotalKB
		}
	default:
		return fmt.Errorf("facts: unknown fact %q", name)
	}
	return c.record(r, name, err, policy)
}

func (c *Collector) record(r *Report, name Name, err error, policy Policy) error {
	r.Outcomes = append(r.Outcomes, Outcome{Name: name, Err: err})
	if err == nil {
		return nil
	}
	if policy.Fatal(err) {
		return err
	}
	c.log(name).Debugf("skipping: %v", err)
	return nil
}

func optString(s string, err error) (*string, error) {
	if err != nil {
		return nil, err
	}
	return &s, nil
}
