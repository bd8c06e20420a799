package model

// Markers shown next to entries in the browse picker.
// Single-width characters keep columns aligned.
const (
	IconGlobal  = " "
	IconLast    = "↺" // last executed command
	IconComment = "#"
	IconCursor  = "›"
)

// Icon returns the picker marker for an entry kind.
func (k Kind) Icon() string {
	switch k {
	case KindLastExecuted:
		return IconLast
	case KindComment:
		return IconComment
	default:
		return IconGlobal
	}
}
