package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrNoFilePath = errors.New("no file path provided")

// LoadYamlFile reads a YAML file and exports its leaves as environment
// variables. Non-empty variables already in the environment win over the file.
func LoadYamlFile(filepath string) error {
	if filepath == "" {
		return ErrNoFilePath
	}

	file, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf("could not open YAML file: %w", err)
	}
	defer file.Close()

	vars, err := ReadYaml(file)
	if err != nil {
		return err
	}

	for key, value := range vars {
		if os.Getenv(key) != "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("could not set env var %s: %w", key, err)
		}
	}

	return nil
}

// ReadYaml flattens the nested mappings of a simple YAML document into
// SECTION_KEY names. Only scalar leaves are supported. A value of the form
// ${VAR:-default} resolves to $VAR when it is non-empty and to default otherwise.
func ReadYaml(r io.Reader) (map[string]string, error) {
	type section struct {
		name   string
		indent int
	}

	var (
		vars    = make(map[string]string)
		parents []section
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		raw := stripComment(scanner.Text())
		content := strings.TrimSpace(raw)
		if content == "" {
			continue
		}
		indent := len(raw) - len(strings.TrimLeft(raw, " "))

		for len(parents) > 0 && parents[len(parents)-1].indent >= indent {
			parents = parents[:len(parents)-1]
		}

		key, value, ok := splitKeyValue(content)
		if !ok {
			return nil, fmt.Errorf("line %d: expected \"key: value\", got %q", lineNo, content)
		}
		if value == "" {
			parents = append(parents, section{name: key, indent: indent})
			continue
		}

		names := make([]string, 0, len(parents)+1)
		for _, p := range parents {
			names = append(names, p.name)
		}
		names = append(names, key)

		vars[strings.ToUpper(strings.Join(names, "_"))] = expand(unquote(value))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading YAML file: %w", err)
	}

	return vars, nil
}

func splitKeyValue(content string) (key, value string, ok bool) {
	if k, found := strings.CutSuffix(content, ":"); found && !strings.Contains(k, ": ") {
		return strings.TrimSpace(k), "", k != ""
	}
	k, v, found := strings.Cut(content, ": ")
	if !found || strings.TrimSpace(k) == "" {
		return "", "", false
	}
	return strings.TrimSpace(k), strings.TrimSpace(v), true
}

// stripComment drops a trailing "# ..." that is not inside quotes.
func stripComment(line string) string {
	var quote rune
	for i, ch := range line {
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == '#' && (i == 0 || line[i-1] == ' ' || line[i-1] == '\t'):
			return line[:i]
		}
	}
	return line
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

func expand(v string) string {
	inner, ok := strings.CutPrefix(v, "${")
	if !ok {
		return v
	}
	inner, ok = strings.CutSuffix(inner, "}")
	if !ok {
		return v
	}

	name, def, _ := strings.Cut(inner, ":-")
	if env := os.Getenv(strings.TrimSpace(name)); env != "" {
		return env
	}
	return strings.TrimSpace(def)
}
