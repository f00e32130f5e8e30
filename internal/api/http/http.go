package http

type Config struct {
	Port        uint   `mapstructure:"port"`
	BaseURL     string `mapstructure:"base_url"`
	MaxUploadMB int64  `mapstructure:"max_upload_mb"`
}

func (c Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}
