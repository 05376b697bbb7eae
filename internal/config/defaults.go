package config

// DefaultConfigPath is read when no --config flag is given.
const DefaultConfigPath = "config.json"

// KeyDelimiter separates nested koanf keys. Patterns such as "*.tar.gz" are
// values, never keys, so the dot is safe here.
const KeyDelimiter = "."
