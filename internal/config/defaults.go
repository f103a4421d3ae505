package config

// DefaultBrokerURL is the default Beacon broker endpoint.
const DefaultBrokerURL = "wss://aosync-broker-eu.beaconwallet.dev:8081"

// DefaultGatewayHost is the default Arweave gateway.
const DefaultGatewayHost = "arweave.net"

// DefaultPermissions are the provider permissions requested on connect.
//
//nolint:gochecknoglobals // Configuration default constant, same pattern as DefaultBrokerURL
var DefaultPermissions = []string{
	"ACCESS_ADDRESS",
	"SIGN_TRANSACTION",
	"ACCESS_PUBLIC_KEY",
}

// DefaultPriority is the default strategy auto-selection order.
//
//nolint:gochecknoglobals // Configuration default constant, same pattern as DefaultPermissions
var DefaultPriority = []string{"wander", "beacon", "walletkit", "webwallet"}

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.arcon",
		App: AppConfig{
			Name: "Faithful Archive",
			Slug: "faithful_archive",
		},
		Wallet: WalletConfig{
			Priority:              DefaultPriority,
			Permissions:           DefaultPermissions,
			ConnectTimeoutSeconds: 30,
			ProbeAttempts:         2,
			ProbeDelayMillis:      100,
		},
		Beacon: BeaconConfig{
			BrokerURL:       DefaultBrokerURL,
			GatewayHost:     DefaultGatewayHost,
			GatewayPort:     443,
			GatewayProtocol: "https",
		},
		Storage: StorageConfig{
			PreferencesFile: "",
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.arcon/arcon.log",
		},
	}
}
