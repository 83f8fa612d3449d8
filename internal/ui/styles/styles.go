// Package styles contains Lip Gloss style definitions.
//
// Two palettes live here: the pink marketplace listing and the dark editor
// chrome. Colours follow the web version of the portfolio.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Marketplace palette
	ListingBgColor      = lipgloss.AdaptiveColor{Light: "#FFF6FA", Dark: "#1F1018"}
	ListingTitleColor   = lipgloss.AdaptiveColor{Light: "#3A0F24", Dark: "#FFE4F0"}
	ListingTextColor    = lipgloss.AdaptiveColor{Light: "#4A1630", Dark: "#F6D3E4"}
	ListingMutedColor   = lipgloss.AdaptiveColor{Light: "#8A4A69", Dark: "#C48AA7"}
	ListingBorderColor  = lipgloss.AdaptiveColor{Light: "#F3B6D3", Dark: "#6B2B4A"}
	ListingAccentColor  = lipgloss.AdaptiveColor{Light: "#FF4FA3", Dark: "#FF4FA3"}
	ListingBadgeBgColor = lipgloss.AdaptiveColor{Light: "#FFF0F7", Dark: "#3A0F24"}

	// Window controls on the listing header
	DotRedColor    = lipgloss.Color("#FF5FA2")
	DotYellowColor = lipgloss.Color("#FFC062")
	DotGreenColor  = lipgloss.Color("#41D3A2")

	// Editor palette
	EditorBgColor         = lipgloss.Color("#1E1E1E")
	EditorSidebarBgColor  = lipgloss.Color("#252526")
	EditorTabBgColor      = lipgloss.Color("#2D2D2D")
	EditorBorderColor     = lipgloss.Color("#2B2B2B")
	EditorTextColor       = lipgloss.Color("#D4D4D4")
	EditorMutedColor      = lipgloss.Color("#858585")
	EditorAccentColor     = lipgloss.Color("#007ACC")
	EditorSelectedBgColor = lipgloss.Color("#37373D")
	EditorDisabledColor   = lipgloss.Color("#4D4D4D")

	// Shared semantic colours
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#8A4A69", Dark: "#696969"}
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#F3B6D3", Dark: "#696969"}
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Overlay colors
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#3A0F24", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#F3B6D3", Dark: "#8C8C8C"}

	// Toast notification colors
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#FF4FA3", Dark: "#FF4FA3"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}

	SpinnerColor = ListingAccentColor
)

var (
	ListingTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ListingTitleColor)
	ListingTextStyle  = lipgloss.NewStyle().Foreground(ListingTextColor)
	ListingMutedStyle = lipgloss.NewStyle().Foreground(ListingMutedColor)
	ListingAccentText = lipgloss.NewStyle().Bold(true).Foreground(ListingAccentColor)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(ListingTextColor).
			Background(ListingBadgeBgColor).
			Padding(0, 1)

	baseButtonStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true)

	PrimaryButtonStyle = baseButtonStyle.
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(ListingAccentColor)

	PrimaryButtonFocusedStyle = baseButtonStyle.
					Foreground(lipgloss.Color("#FFFFFF")).
					Background(lipgloss.Color("#FF3797")).
					Underline(true).
					UnderlineSpaces(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(ListingTitleColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ListingBorderColor).
			Padding(0, 1)

	// Editor chrome
	TitleBarStyle = lipgloss.NewStyle().
			Foreground(EditorMutedColor).
			Background(EditorTabBgColor)

	ActivityBarStyle = lipgloss.NewStyle().
				Foreground(EditorMutedColor).
				Background(lipgloss.Color("#333333"))

	ActivityActiveStyle = ActivityBarStyle.Foreground(EditorTextColor)

	SidebarStyle = lipgloss.NewStyle().
			Foreground(EditorTextColor).
			Background(EditorSidebarBgColor)

	SidebarHeaderStyle = SidebarStyle.Foreground(EditorMutedColor).Bold(true)

	SidebarSelectedStyle = lipgloss.NewStyle().
				Foreground(EditorTextColor).
				Background(EditorSelectedBgColor)

	TabStyle = lipgloss.NewStyle().
			Foreground(EditorMutedColor).
			Background(EditorTabBgColor)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(EditorTextColor).
			Background(EditorBgColor).
			Bold(true)

	TabCloseStyle         = lipgloss.NewStyle().Foreground(EditorMutedColor)
	TabCloseDisabledStyle = lipgloss.NewStyle().Foreground(EditorDisabledColor)
	TabScrollHintStyle    = lipgloss.NewStyle().Foreground(EditorAccentColor).Bold(true)

	GutterStyle = lipgloss.NewStyle().Foreground(EditorMutedColor)
	CodeStyle   = lipgloss.NewStyle().Foreground(EditorTextColor)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(EditorAccentColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(1, 2)
)
