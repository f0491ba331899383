// Package styles contains Lip Gloss style definitions.
package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"dracula":          DraculaPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset is the stock color scheme.
// Color values match the AdaptiveColor defaults in styles.go (Dark values).
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#CCCCCC",
		TokenTextSecondary:   "#BBBBBB",
		TokenTextMuted:       "#696969",
		TokenTextDescription: "#999999",
		TokenTextPlaceholder: "#777777",

		// Borders
		TokenBorderDefault:   "#696969",
		TokenBorderFocus:     "#FFFFFF",
		TokenBorderHighlight: "#54A0FF",

		// Status indicators
		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		// Selection
		TokenSelectionIndicator: "#FFFFFF",
		TokenCardSelectedBorder: "#54A0FF",

		// Buttons
		TokenButtonText:             "#FFFFFF",
		TokenButtonPrimaryBg:        "#1A5276",
		TokenButtonPrimaryFocusBg:   "#3498DB",
		TokenButtonSecondaryBg:      "#2D3436",
		TokenButtonSecondaryFocusBg: "#636E72",
		TokenButtonDangerBg:         "#922B21",
		TokenButtonDangerFocusBg:    "#E74C3C",
		TokenButtonDisabledBg:       "#2D2D2D",

		// Forms
		TokenFormBorder:      "#8C8C8C",
		TokenFormBorderFocus: "#FFFFFF",
		TokenFormLabel:       "#8C8C8C",
		TokenFormLabelFocus:  "#FFFFFF",

		// Overlays/Modals
		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",

		// Toast notifications
		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",
		TokenToastWarn:    "#FECA57",

		// Order lifecycle
		TokenOrderQueued:     "#BBBBBB",
		TokenOrderProcessing: "#54A0FF",
		TokenOrderCompleted:  "#73F59F",
		TokenOrderFailed:     "#FF8787",
		TokenOrderTimedOut:   "#FF9F43",

		// Misc
		TokenFavorite: "#FECA57",
		TokenSpinner:  "#FFFFFF",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha (dark) theme.
// Colors from: https://catppuccin.com/palette
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#CDD6F4", // text
		TokenTextSecondary:   "#BAC2DE", // subtext1
		TokenTextMuted:       "#6C7086", // overlay0
		TokenTextDescription: "#A6ADC8", // subtext0
		TokenTextPlaceholder: "#585B70", // surface2

		// Borders
		TokenBorderDefault:   "#6C7086", // overlay0
		TokenBorderFocus:     "#CBA6F7", // mauve
		TokenBorderHighlight: "#89B4FA", // blue

		// Status indicators
		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red

		// Selection
		TokenSelectionIndicator: "#CBA6F7", // mauve
		TokenCardSelectedBorder: "#89B4FA", // blue

		// Buttons
		TokenButtonText:             "#1E1E2E", // base
		TokenButtonPrimaryBg:        "#89B4FA", // blue
		TokenButtonPrimaryFocusBg:   "#B4BEFE", // lavender
		TokenButtonSecondaryBg:      "#45475A", // surface1
		TokenButtonSecondaryFocusBg: "#585B70", // surface2
		TokenButtonDangerBg:         "#EBA0AC", // maroon
		TokenButtonDangerFocusBg:    "#F38BA8", // red
		TokenButtonDisabledBg:       "#313244", // surface0

		// Forms
		TokenFormBorder:      "#6C7086", // overlay0
		TokenFormBorderFocus: "#CBA6F7", // mauve
		TokenFormLabel:       "#A6ADC8", // subtext0
		TokenFormLabelFocus:  "#CBA6F7", // mauve

		// Overlays/Modals
		TokenOverlayTitle:  "#CDD6F4", // text
		TokenOverlayBorder: "#9399B2", // overlay2

		// Toast notifications
		TokenToastSuccess: "#A6E3A1", // green
		TokenToastError:   "#F38BA8", // red
		TokenToastInfo:    "#89B4FA", // blue
		TokenToastWarn:    "#F9E2AF", // yellow

		// Order lifecycle
		TokenOrderQueued:     "#BAC2DE", // subtext1
		TokenOrderProcessing: "#89B4FA", // blue
		TokenOrderCompleted:  "#A6E3A1", // green
		TokenOrderFailed:     "#F38BA8", // red
		TokenOrderTimedOut:   "#FAB387", // peach

		// Misc
		TokenFavorite: "#F9E2AF", // yellow
		TokenSpinner:  "#CBA6F7", // mauve
	},
}

// DraculaPreset is the Dracula theme.
// Colors from: https://draculatheme.com/contribute
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark theme with vivid accents",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#F8F8F2", // foreground
		TokenTextSecondary:   "#BFBFBF",
		TokenTextMuted:       "#6272A4", // comment
		TokenTextDescription: "#BFBFBF",
		TokenTextPlaceholder: "#6272A4", // comment

		// Borders
		TokenBorderDefault:   "#6272A4", // comment
		TokenBorderFocus:     "#BD93F9", // purple
		TokenBorderHighlight: "#8BE9FD", // cyan

		// Status indicators
		TokenStatusSuccess: "#50FA7B", // green
		TokenStatusWarning: "#F1FA8C", // yellow
		TokenStatusError:   "#FF5555", // red

		// Selection
		TokenSelectionIndicator: "#BD93F9", // purple
		TokenCardSelectedBorder: "#8BE9FD", // cyan

		// Buttons
		TokenButtonText:             "#282A36", // background
		TokenButtonPrimaryBg:        "#BD93F9", // purple
		TokenButtonPrimaryFocusBg:   "#FF79C6", // pink
		TokenButtonSecondaryBg:      "#44475A", // current line
		TokenButtonSecondaryFocusBg: "#6272A4", // comment
		TokenButtonDangerBg:         "#FF5555", // red
		TokenButtonDangerFocusBg:    "#FF6E6E",
		TokenButtonDisabledBg:       "#343746",

		// Forms
		TokenFormBorder:      "#6272A4", // comment
		TokenFormBorderFocus: "#BD93F9", // purple
		TokenFormLabel:       "#BFBFBF",
		TokenFormLabelFocus:  "#BD93F9", // purple

		// Overlays/Modals
		TokenOverlayTitle:  "#F8F8F2", // foreground
		TokenOverlayBorder: "#6272A4", // comment

		// Toast notifications
		TokenToastSuccess: "#50FA7B", // green
		TokenToastError:   "#FF5555", // red
		TokenToastInfo:    "#8BE9FD", // cyan
		TokenToastWarn:    "#F1FA8C", // yellow

		// Order lifecycle
		TokenOrderQueued:     "#BFBFBF",
		TokenOrderProcessing: "#8BE9FD", // cyan
		TokenOrderCompleted:  "#50FA7B", // green
		TokenOrderFailed:     "#FF5555", // red
		TokenOrderTimedOut:   "#FFB86C", // orange

		// Misc
		TokenFavorite: "#F1FA8C", // yellow
		TokenSpinner:  "#BD93F9", // purple
	},
}

// HighContrastPreset maximizes legibility on washed-out terminals.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast - maximum legibility",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#FFFFFF",
		TokenTextSecondary:   "#EEEEEE",
		TokenTextMuted:       "#AAAAAA",
		TokenTextDescription: "#DDDDDD",
		TokenTextPlaceholder: "#999999",

		// Borders
		TokenBorderDefault:   "#FFFFFF",
		TokenBorderFocus:     "#FFFF00",
		TokenBorderHighlight: "#00FFFF",

		// Status indicators
		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		// Selection
		TokenSelectionIndicator: "#FFFF00",
		TokenCardSelectedBorder: "#00FFFF",

		// Buttons
		TokenButtonText:             "#000000",
		TokenButtonPrimaryBg:        "#00AAFF",
		TokenButtonPrimaryFocusBg:   "#00FFFF",
		TokenButtonSecondaryBg:      "#888888",
		TokenButtonSecondaryFocusBg: "#CCCCCC",
		TokenButtonDangerBg:         "#FF0000",
		TokenButtonDangerFocusBg:    "#FF5555",
		TokenButtonDisabledBg:       "#444444",

		// Forms
		TokenFormBorder:      "#FFFFFF",
		TokenFormBorderFocus: "#FFFF00",
		TokenFormLabel:       "#FFFFFF",
		TokenFormLabelFocus:  "#FFFF00",

		// Overlays/Modals
		TokenOverlayTitle:  "#FFFFFF",
		TokenOverlayBorder: "#FFFFFF",

		// Toast notifications
		TokenToastSuccess: "#00FF00",
		TokenToastError:   "#FF0000",
		TokenToastInfo:    "#00FFFF",
		TokenToastWarn:    "#FFFF00",

		// Order lifecycle
		TokenOrderQueued:     "#EEEEEE",
		TokenOrderProcessing: "#00FFFF",
		TokenOrderCompleted:  "#00FF00",
		TokenOrderFailed:     "#FF0000",
		TokenOrderTimedOut:   "#FFAA00",

		// Misc
		TokenFavorite: "#FFFF00",
		TokenSpinner:  "#FFFFFF",
	},
}
