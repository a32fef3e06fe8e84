package defs

// WaveDefinition описывает одну волну врагов.
type WaveDefinition struct {
	Count    int     `yaml:"count"`    // Количество врагов в волне
	Interval float64 `yaml:"interval"` // Seconds between two spawns
	Delay    float64 `yaml:"delay"`    // Seconds before the first spawn, counted from the previous wave
}
