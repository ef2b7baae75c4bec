package config

const (
	EnvLocal = "local"
	EnvProd  = "prod"
)

type AppConfig struct {
	Env string `yaml:"env" env:"ENV" env-default:"local"`
}

type JournalConfig struct {
	// StrictUndo keeps entries that cannot be reversed instead of dropping them.
	StrictUndo bool `yaml:"strict_undo" env:"JOURNAL_STRICT_UNDO" env-default:"false"`
}
