package script

// LoadCommand loads the two sides of a comparison, or a saved session
type LoadCommand struct {
	left    string
	right   string
	session string
}

// NewLoad creates a load command for an explicit folder pair
func NewLoad(left, right string) (*LoadCommand, error) {
	if err := validateArg("left", left); err != nil {
		return nil, err
	}
	if err := validateArg("right", right); err != nil {
		return nil, err
	}
	return &LoadCommand{left: left, right: right}, nil
}

// NewLoadSession creates a load command for a session saved in Beyond Compare
func NewLoadSession(session string) (*LoadCommand, error) {
	if err := validateArg("session", session); err != nil {
		return nil, err
	}
	return &LoadCommand{session: session}, nil
}

// Kind returns KindLoad
func (c *LoadCommand) Kind() Kind {
	return KindLoad
}

// Render returns the load line, e.g. `load "/data/source" "/data/target"`
func (c *LoadCommand) Render() string {
	if c.session != "" {
		return "load " + quote(c.session)
	}
	return "load " + quote(c.left) + " " + quote(c.right)
}
