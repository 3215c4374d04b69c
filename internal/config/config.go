package config

import (
	"github.com/cryptolink/solkit/internal/kms/wallet"
	httpserver "github.com/cryptolink/solkit/internal/server/http"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

type Config struct {
	Env    string            `yaml:"env" env:"APP_ENV" env-default:"production" env-description:"Environment name"`
	Logger Logger            `yaml:"logger"`
	Web    httpserver.Config `yaml:"web"`
	Codec  Codec             `yaml:"codec"`
}

type Logger struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info" env-description:"trace, debug, info, warn, error"`
	Pretty bool   `yaml:"pretty" env:"LOG_PRETTY" env-default:"false" env-description:"Human readable console output"`
}

// Codec holds textual encodings of binary response fields. Addresses and
// keys are always base58.
type Codec struct {
	SignatureEncoding       string `yaml:"signature_encoding" env:"SIGNATURE_ENCODING" env-default:"base64" env-description:"base64 or base58"`
	InstructionDataEncoding string `yaml:"instruction_data_encoding" env:"INSTRUCTION_DATA_ENCODING" env-default:"base64" env-description:"base64 or base58"`
}

func (c Codec) Signature() (wallet.Encoding, error) {
	enc, err := wallet.ParseEncoding(c.SignatureEncoding)

	return enc, errors.Wrap(err, "invalid signature encoding")
}

func (c Codec) InstructionData() (wallet.Encoding, error) {
	enc, err := wallet.ParseEncoding(c.InstructionDataEncoding)

	return enc, errors.Wrap(err, "invalid instruction data encoding")
}

// New reads config from yaml file when path is set, otherwise from env only.
// Env variables override file values.
func New(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, errors.Wrapf(err, "unable to read config %q", path)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "unable to read env")
	}

	return &cfg, nil
}

// Describe lists supported env variables.
func Describe() (string, error) {
	return cleanenv.GetDescription(&Config{}, nil)
}
