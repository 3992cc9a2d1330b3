package config

import (
	"github.com/knadh/koanf/v2"
)

// Conf wraps koanf with accessors that fall back to a caller-supplied default
// when a key is absent.
type Conf struct {
	*koanf.Koanf
}

func (c *Conf) Bool(path string, defaultValues ...bool) bool {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.Bool(path)
}

func (c *Conf) String(path string, defaultValues ...string) string {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.String(path)
}

func (c *Conf) Int64(path string, defaultValues ...int64) int64 {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.Int64(path)
}
