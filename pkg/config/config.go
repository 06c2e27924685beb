package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

// Config structs

type Config struct {
	IsDebug bool `yaml:"is_debug"`

	DataDir string `yaml:"data_dir"`

	Server Server `yaml:"server"`
	MySQL  MySQL  `yaml:"mysql"`

	// Credential selects the password storage policy: "plain" or "sha256".
	// Empty means plain, matching the historical behavior.
	Credential string `yaml:"credential"`

	Env Env `yaml:"env"`
}

type Server struct {
	Port int `yaml:"port"`
}

type MySQL struct {
	Main MySQLServer `yaml:"main"`
}

type MySQLServer struct {
	Enabled      bool   `yaml:"enabled"`
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	User         string `yaml:"user"`
	Pass         string `yaml:"pass"`
	DB           string `yaml:"db"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

type Env struct {
	XlogMode  string `yaml:"xlog_mode"`
	XlogColor bool   `yaml:"xlog_color"`
}

// Global variables

const DefaultPort = 3000

var Shared *Config // single instance of the config

var (
	fConfig string // config file path
)

func init() {
	flag.StringVar(&fConfig, "config", "", "specify the config file")
}

// Initialize the Shared config with the given config file path
func Init(configFile string) {
	file, err := os.Open(configFile)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	err = decoder.Decode(&Shared)
	if err != nil {
		panic(err)
	}
}

// Initialize the Shared config with the default config file path.
// A missing file is not fatal: the zero config plus env/defaults is enough
// to run against a local database.
func EasyInit() {
	fpath := fConfig
	if fpath == "" {
		fpath = "config/config.yml"
	}

	if _, err := os.Stat(fpath); os.IsNotExist(err) {
		printf(fmt.Sprintf("config %s not found, using defaults", fpath))
		Shared = &Config{}
		return
	}

	printf(fmt.Sprintf("use config: %s", fpath))
	Init(fpath)
}

// ListenPort resolves the HTTP listen port. The PORT environment variable
// wins over the config file; the fallback is DefaultPort.
func (c *Config) ListenPort() int {
	if p := os.Getenv("PORT"); p != "" {
		if port, err := strconv.Atoi(p); err == nil && port > 0 {
			return port
		}
	}
	if c.Server.Port > 0 {
		return c.Server.Port
	}
	return DefaultPort
}

// Print the given string to the standard output
func printf(s string) {
	fmt.Printf("%s %s\n", time.Now().Format("2006/01/02 15:04:05"), s)
}
