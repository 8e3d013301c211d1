package component

// Configuration keys understood by CommandLine.
const (
	ExecutableKey = "executable"
	ArgumentsKey  = "arguments"
)

// CommandLine owns the shape of an external tool invocation: the executable
// prefix (interpreter plus script, or a single binary) and the tokenized
// argument template. It performs no execution itself.
type CommandLine struct {
	executable []string
	arguments  []string
}

// Configure reads the "executable" and "arguments" entries of cfg. Either
// may be given as a whitespace-separated string or as a list of tokens.
func (c *CommandLine) Configure(cfg Config) error {
	if err := cfg.Require(ExecutableKey, ArgumentsKey); err != nil {
		return err
	}
	executable, err := cfg.StringList(ExecutableKey)
	if err != nil {
		return err
	}
	if len(executable) == 0 {
		return &ConfigError{Reason: `key "executable" must not be empty`}
	}
	arguments, err := cfg.StringList(ArgumentsKey)
	if err != nil {
		return err
	}
	c.executable = executable
	c.arguments = arguments
	return nil
}

// Executable returns the executable prefix tokens.
func (c *CommandLine) Executable() []string {
	out := make([]string, len(c.executable))
	copy(out, c.executable)
	return out
}

// Arguments returns the argument template tokens.
func (c *CommandLine) Arguments() []string {
	out := make([]string, len(c.arguments))
	copy(out, c.arguments)
	return out
}

// HasToken reports whether the argument template contains tok as a whole
// token.
func (c *CommandLine) HasToken(tok string) bool {
	for _, arg := range c.arguments {
		if arg == tok {
			return true
		}
	}
	return false
}

// Render builds the full invocation: the executable prefix followed by the
// argument template, with every template token that exactly equals a key in
// subs replaced by the mapped value. Substitution matches whole tokens
// only; a literal token that merely contains a placeholder name passes
// through unchanged.
func (c *CommandLine) Render(subs map[string]string) []string {
	out := make([]string, 0, len(c.executable)+len(c.arguments))
	out = append(out, c.executable...)
	for _, tok := range c.arguments {
		if value, ok := subs[tok]; ok {
			out = append(out, value)
		} else {
			out = append(out, tok)
		}
	}
	return out
}
