package constants

const (
	Version        = `0.1.0`
	ConfigFile     = `config`
	ConfigFileType = `yaml`
	ConfigDir      = `.notehead`
	EnvPrefix      = `NOTEHEAD`

	// DefaultEnvFile is loaded from the working directory when present.
	DefaultEnvFile = `.env`
)
