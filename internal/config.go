package newt

import (
	"io"
	"os"

	"github.com/jerbob92/wazero-newt/toolkit"
	"go.uber.org/zap"
)

// IEngineConfig configures an engine. Every With method returns a copy.
type IEngineConfig interface {
	// WithHost sets the interpreter that receives variables and runs
	// callback code. Required.
	WithHost(host Host) IEngineConfig
	// WithToolkit sets the toolkit the natives drive. Defaults to a fresh
	// toolkit.New(toolkit.NewConfig()).
	WithToolkit(tk *toolkit.Toolkit) IEngineConfig
	WithLogger(log *zap.Logger) IEngineConfig
	// WithStderr sets where usage messages are written. Defaults to
	// os.Stderr.
	WithStderr(w io.Writer) IEngineConfig
	// WithModuleName names the wazero host module. Defaults to "newt".
	WithModuleName(name string) IEngineConfig

	GetHost() Host
	GetToolkit() *toolkit.Toolkit
	GetLogger() *zap.Logger
	GetStderr() io.Writer
	GetModuleName() string
}

type engineConfig struct {
	host       Host
	tk         *toolkit.Toolkit
	log        *zap.Logger
	stderr     io.Writer
	moduleName string
}

func NewConfig() IEngineConfig {
	return &engineConfig{
		stderr:     os.Stderr,
		moduleName: "newt",
	}
}

func (c *engineConfig) clone() *engineConfig {
	ret := *c
	return &ret
}

func (c *engineConfig) WithHost(host Host) IEngineConfig {
	ret := c.clone()
	ret.host = host
	return ret
}

func (c *engineConfig) WithToolkit(tk *toolkit.Toolkit) IEngineConfig {
	ret := c.clone()
	ret.tk = tk
	return ret
}

func (c *engineConfig) WithLogger(log *zap.Logger) IEngineConfig {
	ret := c.clone()
	ret.log = log
	return ret
}

func (c *engineConfig) WithStderr(w io.Writer) IEngineConfig {
	ret := c.clone()
	ret.stderr = w
	return ret
}

func (c *engineConfig) WithModuleName(name string) IEngineConfig {
	ret := c.clone()
	ret.moduleName = name
	return ret
}

func (c *engineConfig) GetHost() Host {
	return c.host
}

func (c *engineConfig) GetToolkit() *toolkit.Toolkit {
	return c.tk
}

func (c *engineConfig) GetLogger() *zap.Logger {
	if c.log == nil {
		return Logger()
	}
	return c.log
}

func (c *engineConfig) GetStderr() io.Writer {
	return c.stderr
}

func (c *engineConfig) GetModuleName() string {
	return c.moduleName
}
