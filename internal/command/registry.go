package command

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

// Registry stores commands by name. Names are case-sensitive exact matches
// against the interaction's declared command name.
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command. Registering a second command under an existing
// name is a silent no-op: first registration wins.
func (r *Registry) Register(cmd Command) {
	if _, exists := r.commands[cmd.Name()]; exists {
		return
	}
	r.commands[cmd.Name()] = cmd
}

// Get returns the command with the given name, or nil, logging a warning on miss.
func (r *Registry) Get(name string) Command {
	cmd, ok := r.commands[name]
	if !ok {
		log.WithField("command", name).Warn("could not find command")
		return nil
	}
	return cmd
}

// All returns all registered commands, sorted by name.
func (r *Registry) All() []Command {
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// DefaultRegistry is the registry command packages register into from init().
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(cmd Command) {
	DefaultRegistry.Register(cmd)
}
