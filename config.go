package smorrery

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _config{}
)

// _config is a "hidden" struct, just use `smorreryConfig`.
type _config struct {
	VSOP87    bool
	VSOP87Dir string
	outputDir string
}

// smorreryConfig lazily loads the configuration. The configuration is fully
// optional: without SMORRERY_CONFIG the kernel propagates Keplerian elements
// and exports to the working directory.
func smorreryConfig() _config {
	if cfgLoaded {
		return config
	}
	confPath := os.Getenv("SMORRERY_CONFIG")
	if confPath == "" {
		cfgLoaded = true
		config = _config{outputDir: "."}
		return config
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}

	vsop87Enabled := viper.GetBool("VSOP87.enabled")
	vsop87Dir := viper.GetString("VSOP87.directory")
	outputDir := viper.GetString("general.output_path")
	if outputDir == "" {
		outputDir = "."
	}

	cfgLoaded = true
	config = _config{VSOP87: vsop87Enabled, VSOP87Dir: vsop87Dir, outputDir: outputDir}
	return config
}
