package config

type Config interface {
	Host() string
	Port() string

	BufferSize() int

	Directory() string

	PprofEnabled() bool
	PprofPort() string
}

// MustLoad reads the optional .env file and the process environment, then
// applies command-line overrides (the "--directory <path>" argument pair).
func MustLoad(args []string) (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse(args)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) Host() string       { return c.host }
func (c *config) Port() string       { return c.port }
func (c *config) BufferSize() int    { return c.bufferSize }
func (c *config) Directory() string  { return c.directory }
func (c *config) PprofEnabled() bool { return c.pprofEnabled }
func (c *config) PprofPort() string  { return c.pprofPort }
