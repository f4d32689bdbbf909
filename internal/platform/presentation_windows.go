//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

func listProcessNames() ([]string, error) {
	output, err := exec.Command("tasklist", "/fo", "csv", "/nh").Output()
	if err != nil {
		return nil, fmt.Errorf("tasklist: %w", err)
	}

	lines := strings.Split(string(output), "\n")
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		fields := strings.SplitN(strings.TrimSpace(line), "\",\"", 2)
		if len(fields) == 0 {
			continue
		}
		name := strings.Trim(fields[0], "\"")
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
