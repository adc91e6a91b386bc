package config

import (
	"bufio"
	"os"
	"strings"
)

// EnvFile holds KEY=VALUE overrides next to the working directory.
const EnvFile = ".env"

// Environment variables read by ApplyEnv.
const (
	EnvAPIURL  = "STROKEVIEW_API_URL"
	EnvFileVar = "STROKEVIEW_FILE"
)

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// ReadEnvFile parses path into a map. Each line is KEY=VALUE; blank lines and lines starting
// with # are skipped and surrounding quotes are removed from values. A missing file yields an
// empty map.
func ReadEnvFile(path string) (map[string]string, error) {
	vars := map[string]string{}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return vars, nil
		}
		return nil, err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		vars[key] = unquote(strings.TrimSpace(value))
	}
	return vars, scanner.Err()
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' && v[len(v)-1] == '"' || v[0] == '\'' && v[len(v)-1] == '\'') {
		return v[1 : len(v)-1]
	}
	return v
}

// EnvLookup returns a LookupFunc over the process environment, falling back to the variables
// in path. Process variables win.
func EnvLookup(path string) (LookupFunc, error) {
	vars, err := ReadEnvFile(path)
	if err != nil {
		return os.LookupEnv, err
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides the API URL and drawings file from the environment. Empty values are
// ignored.
func (c *Config) ApplyEnv(lookup LookupFunc) {
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		c.APIURL = v
	}
	if v, ok := lookup(EnvFileVar); ok && v != "" {
		c.File = v
	}
}
