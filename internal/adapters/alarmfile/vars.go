package alarmfile

import (
	"fmt"
	"strings"

	"github.com/olusolaa/ec2ctl/internal/errors"
)

// ParseVarOverrides turns repeated name=value flags into a map. Later pairs
// win. Whitespace around the name is dropped; the value is kept as given.
func ParseVarOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	parsed := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		name := ""
		if len(parts) == 2 {
			name = strings.TrimSpace(parts[0])
		}
		if name == "" {
			return nil, errors.InvalidInput(fmt.Sprintf("variable override %q must look like name=value", pair))
		}
		parsed[name] = parts[1]
	}
	if len(parsed) == 0 {
		return nil, nil
	}
	return parsed, nil
}
