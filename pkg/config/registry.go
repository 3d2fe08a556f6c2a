package config

import (
	"fmt"

	"github.com/arvoscan/arvo/pkg/module"
	"github.com/arvoscan/arvo/pkg/modules/denylist"
	"github.com/arvoscan/arvo/pkg/modules/eicar"
	"github.com/arvoscan/arvo/pkg/modules/extension"
	"github.com/arvoscan/arvo/pkg/modules/whitelist"
	"github.com/arvoscan/arvo/pkg/verdict"
)

// BuildRegistry constructs an ordered module.Registry from the config's
// [[module]] entries, in file order — the loader's entire job per §6's
// "Module registry loading": constructing and ordering module.Module
// values, nothing else.
func (c *Config) BuildRegistry() (*module.Registry, error) {
	registry := module.NewRegistry()

	for _, entry := range c.Modules {
		m, err := buildModule(entry)
		if err != nil {
			return nil, fmt.Errorf("module %q: %w", entry.Name, err)
		}

		mimes := entry.MIMEs
		if len(mimes) == 0 {
			mimes = []string{module.Wildcard}
		}

		registry.Register(m, mimes...)
	}

	return registry, nil
}

func buildModule(entry ModuleEntry) (module.Module, error) {
	switch entry.Builtin {
	case "extension":
		rules := make(map[string]verdict.Verdict, len(entry.Values))
		for _, ext := range entry.Values {
			rules[ext] = verdict.Suspicious
		}
		return extension.New(entry.Name, rules), nil
	case "denylist":
		return denylist.New(entry.Name, entry.Values), nil
	case "whitelist":
		return whitelist.New(entry.Name, entry.Values), nil
	case "eicar":
		return named{Module: eicar.New(), name: entry.Name}, nil
	default:
		return nil, fmt.Errorf("unrecognized builtin module %q", entry.Builtin)
	}
}

// named overrides a builtin module's fixed name with its registry entry
// name.
type named struct {
	module.Module
	name string
}

func (n named) Name() string { return n.name }
