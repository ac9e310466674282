package spec

import (
	"fmt"
	"strings"
)

// ParseLabels reads key=value,key=value as given on the command line.
func ParseLabels(input string) (map[string]string, error) {
	labels := map[string]string{}
	if strings.TrimSpace(input) == "" {
		return labels, nil
	}
	for _, pair := range strings.Split(input, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid label %q", pair)
		}
		labels[parts[0]] = parts[1]
	}
	return labels, nil
}

func MergeLabels(base, extra map[string]string) map[string]string {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	out := map[string]string{}
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func validateLabels(labels map[string]string) string {
	for k := range labels {
		if strings.TrimSpace(k) == "" || strings.ContainsAny(k, "=,") {
			return fmt.Sprintf("invalid label key %q", k)
		}
	}
	return ""
}
