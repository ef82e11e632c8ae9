package config

// Default returns the built-in catalog configuration. It mirrors
// data/config.yaml and is used when no config file is supplied.
func Default() *Config {
	return &Config{
		OpenAI: OpenAIConfig{
			Model:       "gpt-3.5-turbo",
			MaxTokens:   500,
			Temperature: 0.7,
		},
		Generation: GenerationConfig{
			Languages:       []string{"English", "French", "German", "Arabic"},
			DefaultLanguage: "English",
			Tones: map[string]string{
				"friendly":   "Conversational and approachable",
				"expert":     "Technical and authoritative",
				"persuasive": "Sales-focused and compelling",
				"casual":     "Relaxed and informal",
			},
			ContentTypes:  []string{"description", "specifications", "key_features", "box_contents"},
			MaxConcurrent: 4,
		},
		Categories: map[string]CategorySchema{
			"smartphone": {
				Audience: "Tech-savvy consumers looking for premium smartphones",
				Attributes: []AttributeSpec{
					{
						Key:      "Screen Size",
						Aliases:  []string{"display size", "screen", "display"},
						Patterns: []string{`(\d+(?:\.\d+)?\s*(?:inch|"))`},
					},
					{
						Key:      "Battery",
						Aliases:  []string{"battery capacity", "battery mah", "battery life"},
						Patterns: []string{`(\d+\s*mAh)`},
					},
					{
						Key:      "Camera",
						Aliases:  []string{"camera resolution", "main camera", "rear camera"},
						Patterns: []string{`(\d+\s*MP)`},
					},
					{
						Key:      "RAM",
						Aliases:  []string{"memory", "system memory"},
						Patterns: []string{`(\d+\s*GB)\s*RAM`},
					},
					{
						Key:      "Storage",
						Aliases:  []string{"internal storage", "rom", "capacity"},
						Patterns: []string{`(\d+\s*GB)\s*(?:storage|ROM)`},
					},
					{
						Key:      "Processor",
						Aliases:  []string{"cpu", "chipset", "soc"},
						Patterns: []string{`((?:Snapdragon|Helio|Exynos|Kirin)\s+[\w ]*\d+|A\d+\s*(?:Pro|Bionic)?)`},
					},
					{
						Key:      "Operating System",
						Aliases:  []string{"os", "platform", "os version"},
						Patterns: []string{`((?:Android|iOS)\s+\d+)`},
					},
					{
						Key:      "Connectivity",
						Aliases:  []string{"network", "networks", "cellular"},
						Patterns: []string{`(5G|4G|Wi-Fi\s*\d*E?)`},
					},
					{
						Key:     "Security",
						Aliases: []string{"biometrics", "unlock"},
					},
					{
						Key:      "Charging",
						Aliases:  []string{"charging speed", "charger"},
						Patterns: []string{`(\d+\s*W)\s*(?:fast\s*)?charging`},
					},
				},
			},
			"laptop": {
				Audience: "Professionals and students choosing a daily-driver laptop",
				Attributes: []AttributeSpec{
					{
						Key:      "Screen Size",
						Aliases:  []string{"display size", "screen", "display"},
						Patterns: []string{`(\d+(?:\.\d+)?\s*(?:inch|"))`},
					},
					{
						Key:      "RAM",
						Aliases:  []string{"memory", "system memory"},
						Patterns: []string{`(\d+\s*GB)\s*RAM`},
					},
					{
						Key:      "Storage",
						Aliases:  []string{"ssd", "hard drive", "disk"},
						Patterns: []string{`(\d+\s*(?:GB|TB))\s*(?:SSD|storage)`},
					},
					{
						Key:      "Processor",
						Aliases:  []string{"cpu", "chipset"},
						Patterns: []string{`((?:Core\s+i\d|Ryzen\s+\d|M\d)\s*[\w-]*)`},
					},
					{
						Key:      "Battery",
						Aliases:  []string{"battery life", "battery capacity"},
						Patterns: []string{`(\d+\s*(?:Wh|hours?))\s*(?:battery)?`},
					},
					{
						Key:     "Operating System",
						Aliases: []string{"os", "platform"},
					},
				},
			},
			GenericCategory: {
				Audience: "Consumers comparing products in this category",
			},
		},
		Output: OutputConfig{
			BasePath:    "output",
			Format:      "json",
			PrettyPrint: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
