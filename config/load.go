package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// CELESTIAL_JUMPSTRENGTH=18.
const EnvPrefix = "CELESTIAL"

// Load applies overrides on top of the defaults set in init. Values come from
// the optional YAML or JSON file at path and from CELESTIAL_* environment
// variables. An empty path reads the environment only.
func Load(path string) error {
	viper.SetDefault("speed", Physics.Speed)
	viper.SetDefault("jumpStrength", Physics.JumpStrength)
	viper.SetDefault("gravityPerTick", Physics.GravityPerTick)
	viper.SetDefault("jumpCut", Physics.JumpCut)
	viper.SetDefault("ascentCapSpeed", Physics.AscentCapSpeed)
	viper.SetDefault("epsilon", Physics.Epsilon)
	viper.SetDefault("ceiling", Physics.Ceiling)

	viper.SetDefault("hazardDamage", Hazard.Damage)
	viper.SetDefault("maxHealth", Player.MaxHealth)

	viper.SetDefault("window.width", C.Width)
	viper.SetDefault("window.height", C.Height)
	viper.SetDefault("tps", C.TPS)

	viper.SetDefault("logLevel", Log.Level)
	viper.SetDefault("debug.levelsDir", Debug.LevelsDir)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	ceiling := strings.ToLower(viper.GetString("ceiling"))
	if ceiling != "crossing" && ceiling != "overlap" {
		return fmt.Errorf("invalid ceiling policy %q", ceiling)
	}

	Physics.Speed = viper.GetFloat64("speed")
	Physics.JumpStrength = viper.GetFloat64("jumpStrength")
	Physics.GravityPerTick = viper.GetFloat64("gravityPerTick")
	Physics.JumpCut = viper.GetBool("jumpCut")
	Physics.AscentCapSpeed = viper.GetFloat64("ascentCapSpeed")
	Physics.Epsilon = viper.GetFloat64("epsilon")
	Physics.Ceiling = ceiling

	Hazard.Damage = viper.GetInt("hazardDamage")
	Player.MaxHealth = viper.GetInt("maxHealth")

	C.Width = viper.GetInt("window.width")
	C.Height = viper.GetInt("window.height")
	C.TPS = viper.GetInt("tps")

	Log.Level = viper.GetString("logLevel")
	Debug.LevelsDir = viper.GetString("debug.levelsDir")

	return nil
}
