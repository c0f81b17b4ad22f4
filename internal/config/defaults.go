package config

const (
	defaultConfigPath     = "~/.config/tickgen/config.toml"
	defaultOutputDir      = "."
	defaultLogDir         = "~/.local/share/tickgen/logs"
	defaultHistoryDB      = "~/.local/share/tickgen/history.db"
	defaultSwapsFile      = "swaps.txt"
	defaultSectionsFile   = "cues.txt"
	defaultTickStyle      = "int"
	defaultSlots          = 4
	maxSlots              = 16
	defaultIDPrefix       = "engID_"
	defaultSwapEngine     = "swapEngine"
	defaultSetup          = "defaultGameSetup"
	defaultMetronome      = "metronome"
	defaultFirstSection   = "startingGame"
	defaultSectionPrefix  = "section"
	defaultPlaceholder    = "sfx"
	defaultPlaceholderSFX = "0x1000291"
	defaultPlaceholderSub = "tmpDefault"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults. The defaults
// reproduce the reference tickflow layout byte for byte.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: "",
			LogDir:    defaultLogDir,
			HistoryDB: defaultHistoryDB,
		},
		Output: Output{
			SwapsFile:    defaultSwapsFile,
			SectionsFile: defaultSectionsFile,
		},
		Ticks: Ticks{
			Style: defaultTickStyle,
		},
		Engine: Engine{
			Slots:    defaultSlots,
			IDPrefix: defaultIDPrefix,
		},
		Names: Names{
			SwapEngine:    defaultSwapEngine,
			DefaultSetup:  defaultSetup,
			Metronome:     defaultMetronome,
			FirstSection:  defaultFirstSection,
			SectionPrefix: defaultSectionPrefix,
		},
		Emitter: Emitter{
			Placeholder:    defaultPlaceholder,
			PlaceholderSFX: defaultPlaceholderSFX,
			PlaceholderSub: defaultPlaceholderSub,
		},
		Validation: Validation{
			KnownSpecials: []string{
				"special_endEntity",
				"special_tempoChange",
				"special_musicVolume",
				"specialVfx_subtitleEntity",
				"specialVfx_shakeScreen",
				"specialVfx_textBox",
			},
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
