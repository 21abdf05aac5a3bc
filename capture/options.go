package capture

import (
	"github.com/arloliu/vrtack/compress"
	"github.com/arloliu/vrtack/format"
	"github.com/arloliu/vrtack/internal/options"
)

// Config holds the settings of one Encode call.
type Config struct {
	compression format.CompressionType
}

// Option represents a functional option for configuring Encode.
// This is a type alias for the generic Option interface specialized for Config.
type Option = options.Option[*Config]

// WithCompression selects the body codec. The default is format.CompressionZstd.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		c.compression = ct

		return nil
	})
}
