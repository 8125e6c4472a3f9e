package constants

const (
	// RootDirName is the default root directory name under the user's home
	RootDirName = ".base-agents"

	// ConfigDirName is the directory under the root holding persisted state
	ConfigDirName = ".config"

	// RegistryFile is the persisted tool registry snapshot
	RegistryFile = "registry.json"

	// StateFile records installed tool bundles and generated templates
	StateFile = "state.json"

	// ConfigFile is the user configuration
	ConfigFile = "config.json"

	// LogFile is the rotated log written into the cache directory
	LogFile = "base-agents.log"

	// ReadmeFile is never copied into projects
	ReadmeFile = "README.md"

	// GitDir is excluded when copying a cloned bundle into a tool's config directory
	GitDir = ".git"
)
