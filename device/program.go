// This file is part of Orbital.
//
// Orbital is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Orbital is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Orbital.  If not, see <https://www.gnu.org/licenses/>.


package device

import (
	"fmt"
	"regexp"
	"strings"
)

var kernelDecl = regexp.MustCompile(`__kernel\s+void\s+(\w+)\s*\(([^)]*)\)`)

// parameters counts the parameters in a kernel's parameter list.
func parameters(list string) int {
	list = strings.TrimSpace(list)
	if list == "" || list == "void" {
		return 0
	}
	return strings.Count(list, ",") + 1
}

type program struct {
	source string
	built  bool

	// kernels found by Build() and the number of parameters of each
	kernels map[string]int
}

// Build finds the kernels declared in the source. Every kernel must have a Go
// implementation registered with RegisterKernel().
func (p *program) Build(options string) error {
	log := &strings.Builder{}
	if options != "" {
		fmt.Fprintf(log, "options: %s\n", options)
	}

	kernels := make(map[string]int)
	ok := true

	for _, m := range kernelDecl.FindAllStringSubmatch(p.source, -1) {
		name := m[1]
		if _, found := lookupKernel(name); found {
			arity := parameters(m[2])
			fmt.Fprintf(log, "kernel %s: %d parameters: ok\n", name, arity)
			kernels[name] = arity
		} else {
			fmt.Fprintf(log, "kernel %s: no implementation\n", name)
			ok = false
		}
	}

	if len(kernels) == 0 && ok {
		fmt.Fprintf(log, "no kernels in source\n")
		ok = false
	}

	if !ok {
		return BuildError{Log: log.String()}
	}

	p.kernels = kernels
	p.built = true
	return nil
}

func (p *program) Kernel(name string) (Kernel, error) {
	if !p.built {
		return nil, fmt.Errorf("device: program has not been built")
	}
	if arity, ok := p.kernels[name]; ok {
		impl, _ := lookupKernel(name)
		return &kernel{name: name, impl: impl, arity: arity}, nil
	}
	return nil, fmt.Errorf("device: no kernel named %s in program", name)
}

func (p *program) Release() {
	p.built = false
}

type kernel struct {
	name  string
	impl  Implementation
	arity int
	args  []any
}

func (k *kernel) Name() string {
	return k.name
}

func (k *kernel) SetArg(index int, value any) error {
	if index < 0 || index >= k.arity {
		return fmt.Errorf("device: %s: invalid argument index %d", k.name, index)
	}

	switch v := value.(type) {
	case Buffer:
		b, err := asBuffer(v)
		if err != nil {
			return fmt.Errorf("device: %s: argument %d: %w", k.name, index, err)
		}
		value = b
	case int32, float32:
	default:
		return fmt.Errorf("device: %s: argument %d: unsupported type %T", k.name, index, value)
	}

	for len(k.args) <= index {
		k.args = append(k.args, nil)
	}
	k.args[index] = value
	return nil
}

func (k *kernel) bind() (WorkItem, error) {
	if len(k.args) != k.arity {
		return nil, fmt.Errorf("device: %s: %d of %d arguments have been set", k.name, len(k.args), k.arity)
	}
	for i, a := range k.args {
		if a == nil {
			return nil, fmt.Errorf("device: %s: argument %d has not been set", k.name, i)
		}
	}
	args := make([]any, len(k.args))
	copy(args, k.args)
	return k.impl(args)
}

func (k *kernel) Release() {
	k.args = nil
}
