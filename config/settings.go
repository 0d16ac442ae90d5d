package config

// SettingsConfig lists the values the title menu cycles through
type SettingsConfig struct {
	VolumeSteps  []float64
	WindowScales []int
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		VolumeSteps:  []float64{0, 0.25, 0.5, 0.75, 1.0},
		WindowScales: []int{2, 3, 4},
	}
}
