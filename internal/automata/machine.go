package automata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MachineFile is the YAML schema for machine definitions consumed by the
// demo command. Kind selects the system; the remaining fields are
// kind-specific.
type MachineFile struct {
	Kind  string `yaml:"kind"`
	Tape  string `yaml:"tape"`
	Steps int    `yaml:"steps"`

	// kind: tag
	Deletion    int               `yaml:"deletion"`
	Halt        string            `yaml:"halt"`
	Productions map[string]string `yaml:"productions"`

	// kind: cyclic
	Cycle []string `yaml:"cycle"`

	// kind: thue
	Rules  []Rule `yaml:"rules"`
	Random bool   `yaml:"random"`

	// kind: eca
	Rule int `yaml:"rule"`
	Pad  int `yaml:"pad"`
}

// Machine is a loaded system together with its initial tape and step
// budget (0 means the caller's default).
type Machine struct {
	Kind   string
	System System
	Tape   string
	Steps  int
}

func LoadMachine(path string) (*Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseMachine(data)
}

func ParseMachine(data []byte) (*Machine, error) {
	var file MachineFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("machine file: %w", err)
	}

	var system System
	tape := file.Tape
	switch file.Kind {
	case "tag":
		s, err := NewTagSystem(file.Deletion, file.Productions, file.Halt)
		if err != nil {
			return nil, err
		}
		system = s
	case "cyclic":
		s, err := NewCyclicTagSystem(file.Cycle)
		if err != nil {
			return nil, err
		}
		system = s
	case "thue":
		if len(file.Rules) == 0 {
			return nil, &ValidationError{What: "rules", Detail: "must not be empty"}
		}
		system = &SemiThueSystem{Rules: file.Rules, Random: file.Random}
	case "eca":
		if file.Rule < 0 || file.Rule > 255 {
			return nil, &ValidationError{What: "rule", Detail: "must be between 0 and 255"}
		}
		system = &ElementaryCellularAutomaton{Rule: uint8(file.Rule)}
		if file.Pad > 0 {
			tape = Pad(tape, file.Pad)
		}
	case "":
		return nil, &ValidationError{What: "kind", Detail: "is required (tag, cyclic, thue or eca)"}
	default:
		return nil, &ValidationError{What: "kind", Detail: fmt.Sprintf("%q is not one of tag, cyclic, thue or eca", file.Kind)}
	}

	return &Machine{Kind: file.Kind, System: system, Tape: tape, Steps: file.Steps}, nil
}
