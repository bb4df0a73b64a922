package probe

import "strings"

// PropertyMap is the parsed contents of a module.prop file: a mapping from
// property name to string value. Key order is irrelevant; duplicate keys
// take the last occurrence.
type PropertyMap map[string]string

// ParseProperties parses data as a key=value manifest:
//   - trim whitespace per line
//   - skip empty lines and lines whose first non-space character is '#'
//   - split on the first '='
//   - require at least one character before '='
//   - key and value are the trimmed substrings on either side
func ParseProperties(data []byte) PropertyMap {
	props := PropertyMap{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if key == "" {
			continue
		}
		props[key] = value
	}
	return props
}

// Serialize renders a PropertyMap back to key=value lines, one per entry.
// Used only by round-trip tests — the probe itself never writes property
// files.
func (p PropertyMap) Serialize() []byte {
	var sb strings.Builder
	for k, v := range p {
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(v)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}
