package facts

import (
	"bufio"
	"io"
	"strings"
)

type scanResult struct {
	values map[string]string

	// undelimited markers were seen, but only on lines without the
	// delimiter.
	undelimited map[string]bool
}

// scanFields reads r line by line. For each marker, the first line containing
// it is split on the first delim and the trimmed remainder kept. Reading stops
// as soon as every marker has a value, since files like /proc/cpuinfo repeat
// their labels once per logical core.
func scanFields(r io.Reader, delim string, markers ...string) (scanResult, error) {
	res := scanResult{
		values:      make(map[string]string, len(markers)),
		undelimited: make(map[string]bool),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		for _, marker := range markers {
			if _, ok := res.values[marker]; ok || !strings.Contains(line, marker) {
				continue
			}
			parts := strings.SplitN(line, delim, 2)
			if len(parts) != 2 {
				res.undelimited[marker] = true
				continue
			}
			res.values[marker] = strings.TrimSpace(parts[1])
		}
		if len(res.values) == len(markers) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return res, err
	}
	return res, nil
}

func (res scanResult) get(fact Name, source, marker string) (string, error) {
	if v, ok := res.values[marker]; ok {
		return v, nil
	}
	if res.undelimited[marker] {
		return "", errorf(fact, ErrParse, "%s: %q has no value", source, marker)
	}
	return "", errorf(fact, ErrNotFound, "%s: no %q line", source, marker)
}
