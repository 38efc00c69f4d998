package config

// Config is the merged doksnet configuration
type Config struct {
	Store   StoreConfig   `koanf:"store" toml:"store"`
	Preview PreviewConfig `koanf:"preview" toml:"preview"`
	Output  OutputConfig  `koanf:"output" toml:"output"`
	Log     LogConfig     `koanf:"log" toml:"log"`
}

// StoreConfig locates the link store
type StoreConfig struct {
	File string `koanf:"file" toml:"file" validate:"required,excludesall=/0x7C"`
}

// PreviewConfig controls content previews
type PreviewConfig struct {
	Limit int `koanf:"limit" toml:"limit" validate:"gte=0"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Format string `koanf:"format" toml:"format" validate:"oneof=auto term text json junit"`
}

// LogConfig controls logging
type LogConfig struct {
	Persist bool `koanf:"persist" toml:"persist"`
}
