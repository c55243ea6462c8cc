package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Vote and like policies.
const (
	PolicyOnce      = "once"
	PolicyUnlimited = "unlimited"
)

type (
	ServerConfig struct {
		Host               string
		Address            string
		DebugAddress       string
		DisableReqLogs     bool
		JWTExpirationDelta time.Duration
		ShutdownTimeout    time.Duration
	}

	// SimulateConfig holds the artificial latencies applied to simulated operations.
	SimulateConfig struct {
		LoginDelay   time.Duration
		PaymentDelay time.Duration
		ProfileDelay time.Duration
		MessageDelay time.Duration
	}

	PolicyConfig struct {
		EventVote         string
		EventInitialVotes int
		GalleryLike       string
	}

	Config struct {
		Env              string // DEV (local; default), TEST, QA, PROD
		Build            string
		WorkDir          string
		AppName          string
		Debug            bool
		TestMode         bool
		SecretKey        string
		AdminEmail       mail.Address
		DefaultFromEmail mail.Address
		RollbarToken     string
		SendgridApiKey   string
		CurrencySymbol   string

		// ApplyPayments makes a simulated payment update the month's ledger row and the fund total.
		ApplyPayments bool

		Server   ServerConfig
		Simulate SimulateConfig
		Policy   PolicyConfig
	}
)

// NewConfig loads the configuration from defaults, config/.env.<env> and the environment.
// Environment variables are prefixed with the env name, eg: PROD_SECRETKEY.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("build", "dev")
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Khajana")
	v.SetDefault("secretKey", "k4j@na-s3cr3t-6x(f!q2^z8m#w0r$u+l7c1v%b=e5t&y9h")
	v.SetDefault("adminEmail", "admin@friendcircle.com")
	v.SetDefault("defaultFromEmail", "noreply@friendcircle.com")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("currency.symbol", "$")
	v.SetDefault("payments.applyContributions", false)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.debugAddress", ":4000")
	v.SetDefault("server.disableReqLogs", false)
	v.SetDefault("server.jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("server.shutdownTimeout", 10*time.Second)
	v.SetDefault("simulate.loginDelay", 1500*time.Millisecond)
	v.SetDefault("simulate.paymentDelay", 2000*time.Millisecond)
	v.SetDefault("simulate.profileDelay", 1000*time.Millisecond)
	v.SetDefault("simulate.messageDelay", 500*time.Millisecond)
	v.SetDefault("policy.eventVote", PolicyOnce)
	v.SetDefault("policy.eventInitialVotes", 0)
	v.SetDefault("policy.galleryLike", PolicyUnlimited)

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	testMode := env == "TEST"
	if testMode {
		for _, key := range []string{"loginDelay", "paymentDelay", "profileDelay", "messageDelay"} {
			v.SetDefault("simulate."+key, time.Duration(0))
		}
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	wd := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	appName := v.GetString("appName")
	return &Config{
		Env:              env,
		Build:            v.GetString("build"),
		WorkDir:          wd,
		AppName:          appName,
		Debug:            v.GetBool("debug"),
		TestMode:         testMode,
		SecretKey:        v.GetString("secretKey"),
		AdminEmail:       mail.Address{Name: appName + " Admin", Address: v.GetString("adminEmail")},
		DefaultFromEmail: mail.Address{Name: appName, Address: v.GetString("defaultFromEmail")},
		RollbarToken:     v.GetString("rollbarToken"),
		SendgridApiKey:   v.GetString("sendgridApiKey"),
		CurrencySymbol:   v.GetString("currency.symbol"),
		ApplyPayments:    v.GetBool("payments.applyContributions"),
		Server: ServerConfig{
			Host:               v.GetString("server.host"),
			Address:            v.GetString("server.address"),
			DebugAddress:       v.GetString("server.debugAddress"),
			DisableReqLogs:     v.GetBool("server.disableReqLogs"),
			JWTExpirationDelta: v.GetDuration("server.jwtExpirationDelta"),
			ShutdownTimeout:    v.GetDuration("server.shutdownTimeout"),
		},
		Simulate: SimulateConfig{
			LoginDelay:   v.GetDuration("simulate.loginDelay"),
			PaymentDelay: v.GetDuration("simulate.paymentDelay"),
			ProfileDelay: v.GetDuration("simulate.profileDelay"),
			MessageDelay: v.GetDuration("simulate.messageDelay"),
		},
		Policy: PolicyConfig{
			EventVote:         v.GetString("policy.eventVote"),
			EventInitialVotes: v.GetInt("policy.eventInitialVotes"),
			GalleryLike:       v.GetString("policy.galleryLike"),
		},
	}
}
