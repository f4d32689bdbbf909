//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

func listProcessNames() ([]string, error) {
	output, err := exec.Command("ps", "-axco", "comm").Output()
	if err != nil {
		return nil, fmt.Errorf("ps: %w", err)
	}

	lines := strings.Split(string(output), "\n")
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names, nil
}
