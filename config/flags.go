package config

import "github.com/spf13/pflag"

const (
	FLAG_TELEGRAM_TOKEN = "token"
	FLAG_DATABASE_PATH  = "db"

	FLAG_PROVIDER_KEY      = "p_key"
	FLAG_PROVIDER_ENDPOINT = "p_addr"
	FLAG_PROVIDER_NAME     = "p_name"
	FLAG_PROVIDER_MODEL    = "p_model"

	FLAG_OPS_ENABLE  = "ops"
	FLAG_OPS_ADDRESS = "ops_addr"

	FLAG_DEBUG       = "debug"
	FLAG_CONFIG_FILE = "config"

	FLAG_OBSERVE_ENABLE = "observe"
)

// Defined set of flags for riskmentor configuration use.
var FlagSet = pflag.NewFlagSet("Riskmentor_Flags", pflag.PanicOnError)

var flagToConfigKeyMap = map[string]string{
	FLAG_TELEGRAM_TOKEN: "telegram.token",
	FLAG_DATABASE_PATH:  "database.path",

	FLAG_PROVIDER_KEY:      "provider.apikey",
	FLAG_PROVIDER_ENDPOINT: "provider.endpoint",
	FLAG_PROVIDER_NAME:     "provider.name",
	FLAG_PROVIDER_MODEL:    "provider.model",

	FLAG_OPS_ENABLE:  "ops.enable",
	FLAG_OPS_ADDRESS: "ops.address",

	FLAG_DEBUG:          "debug",
	FLAG_OBSERVE_ENABLE: "observe.enable",
}

func init() {
	defineFlags()
}

func defineFlags() {
	FlagSet.String(FLAG_TELEGRAM_TOKEN, "", "telegram bot api token")
	FlagSet.String(FLAG_DATABASE_PATH, "", "path to the sqlite database")
	FlagSet.Bool(FLAG_DEBUG, false, "debug log")
	FlagSet.String(FLAG_CONFIG_FILE, "", "path to config file")

	FlagSet.String(FLAG_PROVIDER_KEY, "", "provider's api key")
	FlagSet.String(FLAG_PROVIDER_NAME, "", "provider's name")
	FlagSet.String(FLAG_PROVIDER_MODEL, "", "provider's model name")
	FlagSet.String(FLAG_PROVIDER_ENDPOINT, "", "provider's endpoint")

	FlagSet.Bool(FLAG_OPS_ENABLE, false, "enable the operational http server")
	FlagSet.String(FLAG_OPS_ADDRESS, "", "operational http server address")

	FlagSet.Bool(FLAG_OBSERVE_ENABLE, false, "enable observability default false")
}
