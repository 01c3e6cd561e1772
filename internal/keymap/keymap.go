package keymap

// Binding associates keys with an action in a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "list", "sheet"
}

// Contexts in which bindings apply.
const (
	ContextGlobal = "global"
	ContextList   = "list"
	ContextSheet  = "sheet"
)

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},
	{ActionToggleDrinks, []string{"n"}, "Toggle drink log", ContextGlobal},

	// Shop list
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextList},
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextList},
	{ActionJumpStart, []string{"g", "home"}, "First shop", ContextList},
	{ActionJumpEnd, []string{"G", "end"}, "Last shop", ContextList},
	{ActionSelect, []string{"enter"}, "Open shop sheet", ContextList},

	// Sheet
	{ActionSheetExpand, []string{"k", "up"}, "Expand sheet", ContextSheet},
	{ActionSheetCollapse, []string{"j", "down"}, "Collapse sheet", ContextSheet},
	{ActionSheetClose, []string{"esc"}, "Close sheet", ContextSheet},
	{ActionSheetPageUp, []string{"pgup"}, "Scroll sheet up", ContextSheet},
	{ActionSheetPageDown, []string{"pgdown"}, "Scroll sheet down", ContextSheet},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
